package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/bmc-info/pkg/bmc"
	"github.com/NVIDIA/bmc-info/pkg/defaults"
	"github.com/NVIDIA/bmc-info/pkg/logging"
	"github.com/NVIDIA/bmc-info/pkg/runner"
	"github.com/NVIDIA/bmc-info/pkg/server"
)

const (
	name           = "bmcinfo-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/bmc-info/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, builds the controller client and cache,
// sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg := runner.NewConfig()
	cache := bmc.NewCache(bmc.NewFetcher(runner.NewClient(cfg)), defaults.CacheTTL)
	h := bmc.NewHandler(cache)

	r := map[string]http.HandlerFunc{
		"/v1/system":         h.HandleSystem,
		"/v1/system/refresh": h.HandleRefresh,
	}

	// Warm the cache before the first request lands. Skipped when the
	// controller is not configured; requests then serve the degraded record.
	if err := cfg.Validate(); err != nil {
		slog.Warn("controller not configured, skipping cache warmup", "error", err)
	} else {
		go func() {
			info := cache.Get(ctx)
			slog.Info("cache warmed",
				"model", info.Model,
				"serial", info.SerialNumber,
			)
		}()
	}

	// Create and run server
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
