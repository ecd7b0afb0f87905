package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yndnr/cpucaps-go/internal/config"
	"github.com/yndnr/cpucaps-go/internal/telemetry/logger"
	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

func TestApp(t *testing.T) {
	app := App()

	if app.Name != "cpucaps" {
		t.Errorf("Name = %q, want cpucaps", app.Name)
	}

	want := []string{"detect", "mask", "list", "cipher", "metrics", "serve", "version"}
	if len(app.Commands) != len(want) {
		t.Fatalf("got %d commands, want %d", len(app.Commands), len(want))
	}
	for i, name := range want {
		if app.Commands[i].Name != name {
			t.Errorf("Commands[%d] = %q, want %q", i, app.Commands[i].Name, name)
		}
	}
}

func TestSetup_InvalidOutput(t *testing.T) {
	if _, err := runApp(t, "-o", "xml", "detect"); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestSetup_InvalidLogLevel(t *testing.T) {
	t.Setenv("CPUCAPS_LOG_LEVEL", "verbose")

	if _, err := runApp(t, "detect"); err == nil {
		t.Error("expected error for invalid log level from environment")
	}
}

func TestSetup_FlagOverridesEnv(t *testing.T) {
	t.Setenv("CPUCAPS_LOG_LEVEL", "verbose")

	if _, err := runApp(t, "--log-level", "error", "-o", "json", "detect"); err != nil {
		t.Errorf("flag should override bad env value: %v", err)
	}
}

func TestSetup_ConfigStrategyUpgrade(t *testing.T) {
	path := writeConfig(t, "detect:\n  strategy: dynamic\n")

	_, err := runApp(t, "--config", path, "detect")
	if !errors.Is(err, config.ErrStrategyUpgrade) {
		t.Errorf("error = %v, want ErrStrategyUpgrade", err)
	}
}

func TestSetup_ConfigUnknownCapability(t *testing.T) {
	path := writeConfig(t, "detect:\n  disable: neon,sve\n")

	_, err := runApp(t, "--config", path, "detect")
	if !errors.Is(err, cpucaps.ErrUnknownCapability) {
		t.Errorf("error = %v, want ErrUnknownCapability", err)
	}
}

func TestSetup_MissingConfigFile(t *testing.T) {
	_, err := runApp(t, "--config", "/nonexistent/cpucaps.yaml", "detect")
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Errorf("error = %v, want load config error", err)
	}
}

func TestParseGlobalFlags_Defaults(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	// Table output is the default.
	if !strings.Contains(out, "FIELD") {
		t.Errorf("expected table output, got:\n%s", out)
	}
}

func TestSetup_LoggerReachesCommands(t *testing.T) {
	t.Cleanup(func() { _ = logger.SetLevel("warn") })

	_, stderr, err := runAppStreams(context.Background(), "--log-level", "debug", "--static-only", "detect")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	for _, want := range []string{"capabilities resolved", "strategy=static-only"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestSetup_DefaultLevelIsQuiet(t *testing.T) {
	_, stderr, err := runAppStreams(context.Background(), "detect")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if stderr != "" {
		t.Errorf("expected no log output at warn level, got:\n%s", stderr)
	}
}
