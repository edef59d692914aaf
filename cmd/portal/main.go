package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/agencyhq/portal/internal/portal/app"
)

func main() {
	// Missing .env is fine; real deployments configure through the
	// environment directly.
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
