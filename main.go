package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"

	"github.com/asandikci/strongswan/cmd"
	"github.com/asandikci/strongswan/internal/api"
	"github.com/asandikci/strongswan/internal/config"
	"github.com/asandikci/strongswan/internal/events"
	"github.com/asandikci/strongswan/internal/logging"
	"github.com/asandikci/strongswan/internal/metrics"
	"github.com/asandikci/strongswan/internal/systemd"
)

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, opts *config.Options) {
		if loadErr := config.Load(opts, nil); loadErr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", loadErr)
		}

		loggingConfig, err := config.LoadLogging(opts.Config, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if initErr := logging.Initialize(loggingConfig); initErr != nil {
			fmt.Fprintf(os.Stderr, "invalid logging configuration: %v\n", initErr)
			os.Exit(1)
		}

		logger := logging.Get("daemon")

		// Event bus and emission taps. Every logical message feeds the
		// Prometheus counters and is broadcast to bus subscribers.
		bus := events.New()
		logging.AddTap(metrics.Tap())
		logging.AddTap(func(e logging.Entry) {
			bus.Publish(events.LogEntryEvent{
				Timestamp: e.Time.Format(time.RFC3339Nano),
				Group:     e.Group,
				Logger:    e.Logger,
				Message:   e.Message,
				Bytes:     e.Bytes,
			})
		})

		// Re-apply logger levels when the config file changes.
		var watcher *config.Watcher[logging.Config]
		if opts.LogWatch {
			watcher = config.NewWatcher(opts.Config, func(path string) (logging.Config, error) {
				return config.LoadLogging(path, opts)
			})
			watcher.OnReload(func(cfg logging.Config) {
				if applyErr := logging.Initialize(cfg); applyErr != nil {
					logger.Log(logging.Error|logging.Level1, "cannot apply logging config: %s", applyErr)
				}
			})
		}

		server := api.NewServer(&api.Options{
			EventBus:       bus,
			MetricsHandler: metrics.HTTPHandler(),
		})

		hooks.OnStart(func() {
			if watcher != nil {
				if watchErr := watcher.Start(); watchErr != nil {
					logger.Log(logging.Error|logging.Level1, "config watcher failed: %s", watchErr)
				}
			}

			logger.Log(logging.Audit|logging.Level0, "charon started")
			if systemd.NotifyReady() {
				logger.Log(logging.Control|logging.Level2, "notified service manager")
			}
			if startErr := server.Start(opts.Listen); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Log(logging.Error|logging.Level0, "admin API failed: %s", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			systemd.NotifyStopping()
			logger.Log(logging.Audit|logging.Level0, "charon shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if stopErr := server.Stop(ctx); stopErr != nil {
				logger.Log(logging.Error|logging.Level1, "error stopping admin API: %s", stopErr)
			}
			if watcher != nil {
				_ = watcher.Stop()
			}
		})
	})

	cli.Root().Use = "charon"
	cli.Root().AddCommand(cmd.CreateDumpCmd())
	cli.Root().AddCommand(cmd.CreateCheckCmd())

	cli.Run()
}
