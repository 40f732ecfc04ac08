package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/relaycore/internal/ctxlog"
	"github.com/vk/relaycore/internal/native"
)

// App encapsulates the runtime's dependencies and startup lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *native.Registry
}

// New builds a fully initialized App: isolated logger, native registry
// populated from the given modules (the compiled-in core set when none are
// provided), manifests loaded and validated. Startup errors are programmer
// or deployment errors, so New panics on them; the CLI entrypoint recovers
// to present a clean message.
func New(outW io.Writer, cfg *Config, modules ...native.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := native.NewRegistry()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All native modules registered.", "count", len(modules))

	if cfg.ManifestsPath != "" {
		if err := reg.LoadManifestDir(ctx, cfg.ManifestsPath); err != nil {
			panic(fmt.Errorf("failed to load manifests: %w", err))
		}
	}

	// A manifest/Go divergence is a programmer error, not a runtime one.
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Manifest validation passed.")

	if cfg.ObservabilityPort > 0 {
		startObservabilityServer(logger, cfg.ObservabilityPort)
	}

	return &App{outW: outW, logger: logger, registry: reg}
}

// Registry returns the validated native function registry.
func (a *App) Registry() *native.Registry { return a.registry }

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger { return a.logger }
