package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yndnr/cpucaps-go/internal/telemetry/logger"
	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

// ErrStrategyUpgrade is returned when configuration asks for runtime probing
// the build did not select. Probing cannot be forced on.
var ErrStrategyUpgrade = errors.New("detect.strategy can only be downgraded to static-only")

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyDetect(&cfg.Detect); err != nil {
		return err
	}
	if err := verifyServe(&cfg.Serve); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyDetect(cfg *DetectSection) error {
	switch strings.ToLower(cfg.Strategy) {
	case "", StrategyAuto, StrategyStaticOnly:
	case "dynamic", "static-plus-dynamic":
		return ErrStrategyUpgrade
	default:
		return fmt.Errorf("detect.strategy: unknown value %q", cfg.Strategy)
	}

	if _, err := cpucaps.ParseSet(cfg.Disable); err != nil {
		return fmt.Errorf("detect.disable: %w", err)
	}
	return nil
}

func verifyServe(cfg *ServeSection) error {
	if cfg.Addr == "" {
		return errors.New("serve.addr is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("serve.shutdown_timeout must be positive")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(cfg.Format) {
	case "", "json", "text", "console":
	default:
		return fmt.Errorf("log.format: unknown value %q", cfg.Format)
	}
	return nil
}

// Apply narrows d according to the detect section. A verified section
// never widens what d may report.
func (s DetectSection) Apply(d cpucaps.Detector) cpucaps.Detector {
	if strings.EqualFold(s.Strategy, StrategyStaticOnly) {
		d.Strategy = cpucaps.StaticOnly
	}
	return d
}

// Disabled returns the capabilities to remove. Unparseable lists disable
// everything, which Verify reports before it can happen.
func (s DetectSection) Disabled() cpucaps.Set {
	set, err := cpucaps.ParseSet(s.Disable)
	if err != nil {
		return cpucaps.SetOf(cpucaps.All()...)
	}
	return set
}
