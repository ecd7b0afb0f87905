package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cpucaps-go/internal/cli/output"
	"github.com/yndnr/cpucaps-go/internal/config"
	"github.com/yndnr/cpucaps-go/internal/infra/buildinfo"
	"github.com/yndnr/cpucaps-go/internal/infra/confloader"
	"github.com/yndnr/cpucaps-go/internal/telemetry/logger"
	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

// Metadata keys set by the root Before hook.
const (
	metaConfig = "config"
	metaLoader = "loader"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "cpucaps",
		Usage:    "Inspect runtime CPU capability detection",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Metadata: map[string]any{},
		Commands: []*cli.Command{
			DetectCommand(),
			MaskCommand(),
			ListCommand(),
			CipherCommand(),
			MetricsCommand(),
			ServeCommand(),
			VersionCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.BoolFlag{
			Name:  "static-only",
			Usage: "Never query the OS; trust the static baseline only",
		},
		&cli.StringFlag{
			Name:  "disable",
			Usage: "Comma-separated capabilities to remove from the result",
		},
	}
}

// GlobalFlags holds the parsed global flags.
type GlobalFlags struct {
	Config     string
	Output     string
	LogLevel   string
	StaticOnly bool
	Disable    string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:     c.String("config"),
		Output:     c.String("output"),
		LogLevel:   c.String("log-level"),
		StaticOnly: c.Bool("static-only"),
		Disable:    c.String("disable"),
	}
}

// overrides maps explicitly set flags onto configuration keys.
func (f *GlobalFlags) overrides(c *cli.Context) map[string]any {
	m := make(map[string]any)
	if c.IsSet("log-level") {
		m["log.level"] = f.LogLevel
	}
	if f.StaticOnly {
		m["detect.strategy"] = config.StrategyStaticOnly
	}
	if c.IsSet("disable") {
		m["detect.disable"] = f.Disable
	}
	return m
}

// setup loads configuration and installs the logger.
func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}

	opts := []confloader.Option{confloader.WithOverrides(flags.overrides(c))}
	if flags.Config != "" {
		opts = append(opts, confloader.WithConfigFile(flags.Config))
	}
	loader := confloader.NewLoader(opts...)

	cfg := config.Default()
	if err := loader.Load(cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.Verify(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errWriter(c),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	c.App.Metadata[metaConfig] = cfg
	c.App.Metadata[metaLoader] = loader
	c.Context = logger.WithLogger(c.Context, log)
	return nil
}

// GetConfig returns the verified configuration, or defaults when the
// Before hook did not run.
func GetConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[metaConfig].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// GetLogger returns the logger installed by the Before hook, or the
// process default.
func GetLogger(c *cli.Context) logger.Logger {
	return logger.FromContext(c.Context)
}

func getLoader(c *cli.Context) *confloader.Loader {
	if l, ok := c.App.Metadata[metaLoader].(*confloader.Loader); ok {
		return l
	}
	return confloader.NewLoader()
}

// resolve runs detection with the configured strategy and disable list.
// CPUCAPS_DISABLE is honoured on top of detect.disable; both only remove.
func resolve(c *cli.Context) cpucaps.Snapshot {
	cfg := GetConfig(c)

	d := cfg.Detect.Apply(cpucaps.DefaultDetector())
	disabled := cfg.Detect.Disabled().Union(cpucaps.DisabledFromEnv(os.Getenv(cpucaps.DisableEnv)))
	snap := cpucaps.Inspect(d, disabled)

	GetLogger(c).Debug("capabilities resolved",
		"strategy", snap.Strategy,
		"static", snap.Static,
		"dynamic", snap.Dynamic,
		"disabled", snap.Disabled,
		"effective", snap.Effective)
	return snap
}

// render writes data to the app writer in the selected output format.
func render(c *cli.Context, data any) error {
	format, err := output.ParseFormat(ParseGlobalFlags(c).Output)
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(writer(c), data)
}

func writer(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}
