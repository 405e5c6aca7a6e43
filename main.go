package main

import (
	"log"
	"log/slog"
	"net/http"

	"storefront-service/handlers"
	"storefront-service/internal/checkout"
	"storefront-service/internal/config"
	"storefront-service/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments inject the environment.
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.New(logger.Options{Service: "storefront-service", Level: cfg.LogLevel})

	api := handlers.API(cfg.EndpointPrefix, cfg, checkout.StripeSessions{})

	slog.Info("starting storefront service", slog.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, api); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
