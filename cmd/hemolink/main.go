package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Luffyt01/HemoLink-sub000/internal/app"
	"github.com/Luffyt01/HemoLink-sub000/internal/config"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
