// Package command provides CLI command definitions for the cpucaps tool.
//
// It uses urfave/cli/v2. The root Before hook loads configuration
// (defaults, file, CPUCAPS_* environment, flags), verifies it and installs
// the logger; every command then renders through internal/cli/output.
package command
