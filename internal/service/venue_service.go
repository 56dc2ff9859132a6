package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

type VenueService interface {
	CreateVenue(ctx context.Context, venue *model.Venue) error
	GetVenueByID(ctx context.Context, id uint) (*model.Venue, error)
	VenuesByLocation(ctx context.Context) ([]repository.VenueGroup, error)
	SearchVenues(ctx context.Context, term string) ([]model.Venue, error)
	UpdateVenue(ctx context.Context, venue *model.Venue) error
	DeleteVenue(ctx context.Context, id uint) error
	VenueShows(ctx context.Context, venueID uint, at time.Time) (past, upcoming []repository.VenueShow, err error)
	UpcomingCount(ctx context.Context, venueID uint, at time.Time) (int64, error)
}

type venueService struct {
	db    *gorm.DB
	repo  repository.VenueRepo
	shows repository.ShowRepo
}

var _ VenueService = (*venueService)(nil)

func NewVenueService(db *gorm.DB, venueRepo repository.VenueRepo, showRepo repository.ShowRepo) *venueService {
	return &venueService{
		db:    db,
		repo:  venueRepo,
		shows: showRepo,
	}
}

func (s *venueService) CreateVenue(ctx context.Context, venue *model.Venue) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, venue)
	})
	return classify(err)
}

func (s *venueService) GetVenueByID(ctx context.Context, id uint) (*model.Venue, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return venue, nil
}

func (s *venueService) VenuesByLocation(ctx context.Context) ([]repository.VenueGroup, error) {
	return s.repo.GroupedByLocation(ctx)
}

func (s *venueService) SearchVenues(ctx context.Context, term string) ([]model.Venue, error) {
	return s.repo.SearchByName(ctx, term)
}

func (s *venueService) UpdateVenue(ctx context.Context, venue *model.Venue) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(ctx, venue.ID); err != nil {
			return err
		}
		return repo.Update(ctx, venue)
	})
	return classify(err)
}

// DeleteVenue removes the venue and every show booked at it in one
// transaction, so a failed delete leaves the schedule intact.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.shows.WithTx(tx).DeleteForVenue(ctx, id); err != nil {
			return err
		}
		affected, err := s.repo.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return classify(err)
}

func (s *venueService) VenueShows(ctx context.Context, venueID uint, at time.Time) ([]repository.VenueShow, []repository.VenueShow, error) {
	past, err := s.shows.PastForVenue(ctx, venueID, at)
	if err != nil {
		return nil, nil, err
	}
	upcoming, err := s.shows.UpcomingForVenue(ctx, venueID, at)
	if err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

func (s *venueService) UpcomingCount(ctx context.Context, venueID uint, at time.Time) (int64, error) {
	return s.shows.CountUpcomingForVenue(ctx, venueID, at)
}
