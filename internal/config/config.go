package config

import "time"

// Config is the root configuration for the cpucaps tool.
type Config struct {
	Detect DetectSection `koanf:"detect"`
	Serve  ServeSection  `koanf:"serve"`
	Log    LogSection    `koanf:"log"`
}

// DetectSection configures capability resolution.
type DetectSection struct {
	// Strategy is "auto" (platform default) or "static-only".
	Strategy string `koanf:"strategy"`
	// Disable is a comma-separated capability list removed from the result.
	Disable string `koanf:"disable"`
}

// ServeSection configures the metrics endpoint.
type ServeSection struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
