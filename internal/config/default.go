package config

import "time"

// Default configuration values.
const (
	StrategyAuto       = "auto"
	StrategyStaticOnly = "static-only"

	DefaultServeAddr       = "127.0.0.1:9188"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Detect: DetectSection{
			Strategy: StrategyAuto,
		},
		Serve: ServeSection{
			Addr:            DefaultServeAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
