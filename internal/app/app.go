package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/conductor/internal/citymap"
	"github.com/specialistvlad/conductor/internal/ctxlog"
	"github.com/specialistvlad/conductor/internal/mapdef"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader mapdef.Loader

	cityMap *citymap.Map
}

// NewApp is the constructor for the main application. Map output goes to
// outW and logs go to logW through an isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader mapdef.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Map returns the map built by the last successful Load, or nil.
func (a *App) Map() *citymap.Map {
	return a.cityMap
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Load reads the configured map source and builds the map. A failed load
// leaves the previously built map in place; a successful one replaces it
// wholesale.
func (a *App) Load(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Loading map...", "map_path", a.config.MapPath)

	records, err := a.loader.Load(ctx, a.config.MapPath)
	if err != nil {
		// Source failures are the loader's to describe.
		a.logger.Debug("Map source unavailable.", "error", err)
		return err
	}
	a.logger.Debug("Map source read.", "records", len(records))

	m, err := citymap.Build(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to build map from %s: %w", a.config.MapPath, err)
	}

	a.cityMap = m
	a.logger.Info("Map loaded successfully.", "cities", m.CityCount(), "routes", m.RouteCount())
	return nil
}
