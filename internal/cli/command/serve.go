package command

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cpucaps-go/internal/config"
	"github.com/yndnr/cpucaps-go/internal/infra/confloader"
	"github.com/yndnr/cpucaps-go/internal/infra/shutdown"
	"github.com/yndnr/cpucaps-go/internal/telemetry/logger"
	"github.com/yndnr/cpucaps-go/internal/telemetry/metric"
)

// ServeCommand returns the serve command.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve /metrics and /healthz over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address (overrides serve.addr)",
			},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	cfg := GetConfig(c)
	log := GetLogger(c)

	addr := cfg.Serve.Addr
	if c.IsSet("addr") {
		addr = c.String("addr")
	}

	reg, err := newRegistry(resolve(c), metric.WithRuntimeCollectors())
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           newServeMux(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	handler := shutdown.NewHandler(cfg.Serve.ShutdownTimeout)
	handler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return srv.Shutdown(ctx)
	})

	if path := ParseGlobalFlags(c).Config; path != "" {
		watcher, err := watchConfig(c, path, log)
		if err != nil {
			log.Warn("config watch disabled", "path", path, "error", err)
		} else {
			handler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("metrics server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	if err := handler.Wait(c.Context); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped")
	return nil
}

func newServeMux(reg *metric.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", reg.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// watchConfig reloads the log level when the config file changes.
// Detection settings are fixed for the lifetime of the process.
func watchConfig(c *cli.Context, path string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(path); err != nil {
		_ = watcher.Stop()
		return nil, err
	}

	loader := getLoader(c)
	watcher.OnChange(func(string) {
		reloadLogLevel(loader, log)
	})
	watcher.StartAsync()
	return watcher, nil
}

func reloadLogLevel(loader *confloader.Loader, log logger.Logger) {
	cfg := config.Default()
	if err := loader.Reload(cfg); err != nil {
		log.Warn("config reload failed", "error", err)
		return
	}
	if err := config.Verify(cfg); err != nil {
		log.Warn("reloaded config rejected", "error", err)
		return
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn("log level not applied", "error", err)
		return
	}
	log.Info("log level reloaded", "level", logger.GetLevel())
}
