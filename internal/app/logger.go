package app

import (
	"fmt"

	"go-leave/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func NewLogger(cfg Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Setup is the common start of every binary: load .env when present, read
// the config, install the global logger and register validator names.
// The caller owns the returned logger and should Sync it on exit.
func Setup() (Config, *zap.Logger, error) {
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	apperror.Init()
	return cfg, logger, nil
}
