package main

import (
	"context"
	"log"
	"time"

	"go-leave/internal/app"
	"go-leave/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, logger, err := app.Setup()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(context.Background(), r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:           cfg.Port,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		},
		bootstrap.NewStdoutAuditLogger(logger),
	)
}
