package cmd

import (
	"context"
	"log/slog"

	"github.com/julienpequegnot/emolex/internal/app"
	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/emotion"
	"github.com/julienpequegnot/emolex/internal/logging"
)

// loadEngine reads the config, installs the logger and builds the engine.
func loadEngine(ctx context.Context) (*config.Config, *slog.Logger, *emotion.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := logging.NewLogger(cfg.Log)

	engine, err := app.NewEngine(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, engine, nil
}
