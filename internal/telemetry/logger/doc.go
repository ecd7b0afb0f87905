// Package logger provides structured logging for cpucaps.
//
// It wraps the standard library log/slog:
//
//   - logger.go: Logger interface, configuration and the process default
//   - context.go: carrying a Logger through context.Context
//
// Capability sets implement encoding.TextMarshaler, so they log as
// "neon,aes" in both JSON and text output.
package logger
