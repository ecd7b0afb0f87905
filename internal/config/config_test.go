package config

import (
	"errors"
	"testing"
	"time"

	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Detect.Strategy != StrategyAuto {
		t.Errorf("Detect.Strategy = %q, want %q", cfg.Detect.Strategy, StrategyAuto)
	}
	if cfg.Detect.Disable != "" {
		t.Errorf("Detect.Disable = %q, want empty", cfg.Detect.Disable)
	}
	if cfg.Serve.Addr != DefaultServeAddr {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, DefaultServeAddr)
	}
	if cfg.Serve.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("Serve.ShutdownTimeout = %v, want %v", cfg.Serve.ShutdownTimeout, DefaultShutdownTimeout)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify(Default()) error = %v", err)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"static-only", func(c *Config) { c.Detect.Strategy = "static-only" }, false},
		{"empty strategy", func(c *Config) { c.Detect.Strategy = "" }, false},
		{"unknown strategy", func(c *Config) { c.Detect.Strategy = "fast" }, true},
		{"disable list", func(c *Config) { c.Detect.Disable = "neon,aes" }, false},
		{"bad disable list", func(c *Config) { c.Detect.Disable = "neon,avx512" }, true},
		{"empty addr", func(c *Config) { c.Serve.Addr = "" }, true},
		{"zero timeout", func(c *Config) { c.Serve.ShutdownTimeout = 0 }, true},
		{"negative timeout", func(c *Config) { c.Serve.ShutdownTimeout = -time.Second }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"json log", func(c *Config) { c.Log.Format = "json" }, false},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Verify(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_StrategyUpgrade(t *testing.T) {
	for _, s := range []string{"dynamic", "static-plus-dynamic"} {
		cfg := Default()
		cfg.Detect.Strategy = s
		if err := Verify(cfg); !errors.Is(err, ErrStrategyUpgrade) {
			t.Errorf("Verify(strategy=%s) error = %v, want ErrStrategyUpgrade", s, err)
		}
	}
}

func TestDetectSection_Apply(t *testing.T) {
	base := cpucaps.Detector{Strategy: cpucaps.StaticPlusDynamic, SIMDBit: 1 << 12}

	tests := []struct {
		strategy string
		in       cpucaps.Detector
		want     cpucaps.Strategy
	}{
		{StrategyAuto, base, cpucaps.StaticPlusDynamic},
		{"", base, cpucaps.StaticPlusDynamic},
		{StrategyStaticOnly, base, cpucaps.StaticOnly},
		{"STATIC-ONLY", base, cpucaps.StaticOnly},
		{StrategyAuto, cpucaps.Detector{Strategy: cpucaps.StaticOnly}, cpucaps.StaticOnly},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			got := DetectSection{Strategy: tt.strategy}.Apply(tt.in)
			if got.Strategy != tt.want {
				t.Errorf("Apply().Strategy = %s, want %s", got.Strategy, tt.want)
			}
			if got.SIMDBit != tt.in.SIMDBit {
				t.Errorf("Apply() changed SIMDBit to %#x", got.SIMDBit)
			}
		})
	}
}

func TestDetectSection_Disabled(t *testing.T) {
	if got := (DetectSection{Disable: "neon"}).Disabled(); got != cpucaps.NEON.Mask() {
		t.Errorf("Disabled() = %s, want neon", got)
	}
	if got := (DetectSection{}).Disabled(); got != 0 {
		t.Errorf("Disabled() = %s, want none", got)
	}
	if got := (DetectSection{Disable: "bogus"}).Disabled(); got != cpucaps.SetOf(cpucaps.All()...) {
		t.Errorf("Disabled() on bad list = %s, want all", got)
	}
}
