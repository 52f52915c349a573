package main

import (
	"log"

	"go-leave/internal/app"

	"go.uber.org/zap"
)

func main() {
	cfg, logger, err := app.Setup()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("worker stopped", zap.Error(err))
	}
}
