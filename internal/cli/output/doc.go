// Package output provides output formatting for the cpucaps CLI.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned tables via text/tabwriter
//   - json.go: indented JSON
//   - yaml.go: YAML via gopkg.in/yaml.v3
//
// Table output is for people; json and yaml are stable for scripts.
package output
