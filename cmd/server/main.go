package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alejomarqz/liganacionalgt-live/internal/config"
	"github.com/Alejomarqz/liganacionalgt-live/internal/logging"
	"github.com/Alejomarqz/liganacionalgt-live/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "liganacionalgt-live",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(ctx, cfg, logger)
	srv.Run(ctx, stop)
}
