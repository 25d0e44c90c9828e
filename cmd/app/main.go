package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/MatthewLee0811/InvestPulse/internal/di"
	"github.com/MatthewLee0811/InvestPulse/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s cache=%s port=%d", cfg.Environment, cfg.Cache.Backend, cfg.Server.Port)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
