package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

type ShowService interface {
	CreateShow(ctx context.Context, artistID, venueID uint, startTime time.Time) (*model.Show, error)
	GetAllShowsJoined(ctx context.Context) ([]repository.JoinedShow, error)
}

type showService struct {
	db      *gorm.DB
	repo    repository.ShowRepo
	artists repository.ArtistRepo
	venues  repository.VenueRepo
}

var _ ShowService = (*showService)(nil)

func NewShowService(db *gorm.DB, showRepo repository.ShowRepo, artistRepo repository.ArtistRepo, venueRepo repository.VenueRepo) *showService {
	return &showService{
		db:      db,
		repo:    showRepo,
		artists: artistRepo,
		venues:  venueRepo,
	}
}

// CreateShow inserts a show after verifying both referenced rows exist
// inside the same transaction. A dangling id fails the whole operation;
// nothing is persisted.
func (s *showService) CreateShow(ctx context.Context, artistID, venueID uint, startTime time.Time) (*model.Show, error) {
	show := &model.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.artists.WithTx(tx).GetByID(ctx, artistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: artist %d does not exist", ErrIntegrity, artistID)
			}
			return err
		}
		if _, err := s.venues.WithTx(tx).GetByID(ctx, venueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: venue %d does not exist", ErrIntegrity, venueID)
			}
			return err
		}
		return s.repo.WithTx(tx).Create(ctx, show)
	})
	if err != nil {
		return nil, classify(err)
	}
	return show, nil
}

func (s *showService) GetAllShowsJoined(ctx context.Context) ([]repository.JoinedShow, error) {
	return s.repo.ListJoined(ctx)
}
