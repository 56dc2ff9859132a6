package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN   string
	Addr          string
	SessionSecret string
	Env           string
}

func LoadConfig() (*Config, error) {
	// .env is optional; deployments set the environment directly.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
	}
	cfg := &Config{
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		Addr:          os.Getenv("ADDR"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Env:           os.Getenv("APP_ENV"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":3000"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-only-secret"
	}
	return cfg, nil
}
