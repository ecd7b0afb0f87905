// Package confloader provides configuration loading for cpucaps.
//
// It is a thin layer over koanf:
//
//   - loader.go: YAML file and CPUCAPS_* environment sources
//   - provider.go: map provider for command-line flags
//   - watcher.go: fsnotify-based reload notifications
//
// Priority (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Default values
package confloader
