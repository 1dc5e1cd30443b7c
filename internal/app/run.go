package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/conductor/internal/ctxlog"
	"github.com/specialistvlad/conductor/internal/publish"
)

// Run loads the map, prints it and, when configured, publishes it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.Load(ctx); err != nil {
		return err
	}

	if a.config.City != "" {
		if err := renderCity(a.outW, a.cityMap, a.config.City); err != nil {
			return err
		}
	} else if err := renderMap(a.outW, a.cityMap); err != nil {
		return err
	}

	if a.config.PublishURL != "" {
		if err := a.publish(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) publish(ctx context.Context) error {
	p, err := publish.New(publish.Options{
		URL:                a.config.PublishURL,
		Namespace:          a.config.PublishNamespace,
		Event:              a.config.PublishEvent,
		AckEvent:           a.config.PublishAckEvent,
		Timeout:            a.config.PublishTimeout,
		InsecureSkipVerify: a.config.InsecureSkipVerify,
	})
	if err != nil {
		return fmt.Errorf("invalid publish configuration: %w", err)
	}

	a.logger.Info("📡 Publishing map...", "url", a.config.PublishURL)
	if _, err := p.Publish(ctx, a.cityMap); err != nil {
		return fmt.Errorf("failed to publish map: %w", err)
	}
	return nil
}
