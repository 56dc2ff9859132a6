package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

type ArtistService interface {
	CreateArtist(ctx context.Context, artist *model.Artist) error
	GetArtistByID(ctx context.Context, id uint) (*model.Artist, error)
	GetAllArtists(ctx context.Context) ([]model.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]model.Artist, error)
	UpdateArtist(ctx context.Context, artist *model.Artist) error
	DeleteArtist(ctx context.Context, id uint) error
	ArtistShows(ctx context.Context, artistID uint, at time.Time) (past, upcoming []repository.ArtistShow, err error)
	UpcomingCount(ctx context.Context, artistID uint, at time.Time) (int64, error)
}

type artistService struct {
	db    *gorm.DB
	repo  repository.ArtistRepo
	shows repository.ShowRepo
}

var _ ArtistService = (*artistService)(nil)

func NewArtistService(db *gorm.DB, artistRepo repository.ArtistRepo, showRepo repository.ShowRepo) *artistService {
	return &artistService{
		db:    db,
		repo:  artistRepo,
		shows: showRepo,
	}
}

func (s *artistService) CreateArtist(ctx context.Context, artist *model.Artist) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, artist)
	})
	return classify(err)
}

func (s *artistService) GetArtistByID(ctx context.Context, id uint) (*model.Artist, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return artist, nil
}

func (s *artistService) GetAllArtists(ctx context.Context) ([]model.Artist, error) {
	return s.repo.ListAll(ctx)
}

func (s *artistService) SearchArtists(ctx context.Context, term string) ([]model.Artist, error) {
	return s.repo.SearchByName(ctx, term)
}

func (s *artistService) UpdateArtist(ctx context.Context, artist *model.Artist) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(ctx, artist.ID); err != nil {
			return err
		}
		return repo.Update(ctx, artist)
	})
	return classify(err)
}

// DeleteArtist cascades to the artist's shows, mirroring DeleteVenue.
func (s *artistService) DeleteArtist(ctx context.Context, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.shows.WithTx(tx).DeleteForArtist(ctx, id); err != nil {
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

func (s *artistService) ArtistShows(ctx context.Context, artistID uint, at time.Time) ([]repository.ArtistShow, []repository.ArtistShow, error) {
	past, err := s.shows.PastForArtist(ctx, artistID, at)
	if err != nil {
		return nil, nil, err
	}
	upcoming, err := s.shows.UpcomingForArtist(ctx, artistID, at)
	if err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

func (s *artistService) UpcomingCount(ctx context.Context, artistID uint, at time.Time) (int64, error) {
	return s.shows.CountUpcomingForArtist(ctx, artistID, at)
}
