package main

import (
	"log"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gigboard/config"
	"gigboard/internal/app"
	"gigboard/internal/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	application := app.New(cfg, db, logger)
	defer application.Close()

	if err := application.Migrate(); err != nil {
		logger.Fatal("migrate schema", zap.Error(err))
	}

	r := router.New(application)
	logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
