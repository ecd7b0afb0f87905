// Package config defines the cpucaps configuration structure.
//
//   - config.go: Config struct definition
//   - default.go: default values
//   - verify.go: validation and application to a detector
//
// Configuration is loaded via internal/infra/confloader from a YAML file,
// CPUCAPS_* environment variables and command-line flags.
//
// Detection settings can only narrow what the detector reports: the
// strategy may be downgraded to static-only and capabilities may be
// disabled, but nothing here can claim a capability the hardware lacks.
package config
