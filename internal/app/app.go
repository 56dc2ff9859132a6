package app

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gigboard/config"
	"gigboard/internal/model"
	"gigboard/internal/repository"
	"gigboard/internal/service"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Logger *zap.Logger

	VenueRepo  repository.VenueRepo
	ArtistRepo repository.ArtistRepo
	ShowRepo   repository.ShowRepo

	VenueService  service.VenueService
	ArtistService service.ArtistService
	ShowService   service.ShowService
}

func New(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *App {
	venueRepo := repository.NewVenueRepoGorm(db)
	artistRepo := repository.NewArtistRepoGorm(db)
	showRepo := repository.NewShowRepoGorm(db)

	venueService := service.NewVenueService(db, venueRepo, showRepo)
	artistService := service.NewArtistService(db, artistRepo, showRepo)
	showService := service.NewShowService(db, showRepo, artistRepo, venueRepo)

	return &App{
		Config:        cfg,
		DB:            db,
		Logger:        logger,
		VenueRepo:     venueRepo,
		ArtistRepo:    artistRepo,
		ShowRepo:      showRepo,
		VenueService:  venueService,
		ArtistService: artistService,
		ShowService:   showService,
	}
}

func (app *App) Migrate() error {
	return app.DB.AutoMigrate(&model.Venue{}, &model.Artist{}, &model.Show{})
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
