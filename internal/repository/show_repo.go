package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gigboard/internal/model"
)

// JoinedShow is one row of the flat show listing, joined with both
// counterpart entities so callers need no follow-up lookups.
type JoinedShow struct {
	ID              uint
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueShow is a show at some venue joined with its artist.
type VenueShow struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShow is a show by some artist joined with its venue.
type ArtistShow struct {
	VenueID        uint
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowRepo splits every per-entity read on a caller-supplied boundary
// instant: upcoming is start_time strictly after the boundary, past is
// the complement, so each show lands in exactly one bucket.
type ShowRepo interface {
	WithTx(tx *gorm.DB) ShowRepo
	Create(ctx context.Context, show *model.Show) error
	ListJoined(ctx context.Context) ([]JoinedShow, error)
	UpcomingForVenue(ctx context.Context, venueID uint, boundary time.Time) ([]VenueShow, error)
	PastForVenue(ctx context.Context, venueID uint, boundary time.Time) ([]VenueShow, error)
	UpcomingForArtist(ctx context.Context, artistID uint, boundary time.Time) ([]ArtistShow, error)
	PastForArtist(ctx context.Context, artistID uint, boundary time.Time) ([]ArtistShow, error)
	CountUpcomingForVenue(ctx context.Context, venueID uint, boundary time.Time) (int64, error)
	CountUpcomingForArtist(ctx context.Context, artistID uint, boundary time.Time) (int64, error)
	DeleteForVenue(ctx context.Context, venueID uint) error
	DeleteForArtist(ctx context.Context, artistID uint) error
}

type showRepoGorm struct {
	db *gorm.DB
}

var _ ShowRepo = (*showRepoGorm)(nil)

func NewShowRepoGorm(db *gorm.DB) *showRepoGorm {
	return &showRepoGorm{
		db: db,
	}
}

func (r *showRepoGorm) WithTx(tx *gorm.DB) ShowRepo {
	return &showRepoGorm{
		db: tx,
	}
}

func (r *showRepoGorm) Create(ctx context.Context, show *model.Show) error {
	return gorm.G[model.Show](r.db).Create(ctx, show)
}

func (r *showRepoGorm) ListJoined(ctx context.Context) ([]JoinedShow, error) {
	var rows []JoinedShow
	err := r.db.WithContext(ctx).
		Table("show").
		Select(`show.id, show.venue_id, venue.name AS venue_name,
			show.artist_id, artist.name AS artist_name,
			artist.image_link AS artist_image_link, show.start_time`).
		Joins("JOIN artist ON artist.id = show.artist_id").
		Joins("JOIN venue ON venue.id = show.venue_id").
		Order("show.start_time, show.id").
		Scan(&rows).Error
	return rows, err
}

func (r *showRepoGorm) venueShows(ctx context.Context, venueID uint, timeCond string, boundary time.Time) ([]VenueShow, error) {
	var rows []VenueShow
	err := r.db.WithContext(ctx).
		Table("show").
		Select(`show.artist_id, artist.name AS artist_name,
			artist.image_link AS artist_image_link, show.start_time`).
		Joins("JOIN artist ON artist.id = show.artist_id").
		Where("show.venue_id = ?", venueID).
		Where("show.start_time "+timeCond+" ?", boundary).
		Order("show.start_time, show.id").
		Scan(&rows).Error
	return rows, err
}

func (r *showRepoGorm) UpcomingForVenue(ctx context.Context, venueID uint, boundary time.Time) ([]VenueShow, error) {
	return r.venueShows(ctx, venueID, ">", boundary)
}

func (r *showRepoGorm) PastForVenue(ctx context.Context, venueID uint, boundary time.Time) ([]VenueShow, error) {
	return r.venueShows(ctx, venueID, "<=", boundary)
}

func (r *showRepoGorm) artistShows(ctx context.Context, artistID uint, timeCond string, boundary time.Time) ([]ArtistShow, error) {
	var rows []ArtistShow
	err := r.db.WithContext(ctx).
		Table("show").
		Select(`show.venue_id, venue.name AS venue_name,
			venue.image_link AS venue_image_link, show.start_time`).
		Joins("JOIN venue ON venue.id = show.venue_id").
		Where("show.artist_id = ?", artistID).
		Where("show.start_time "+timeCond+" ?", boundary).
		Order("show.start_time, show.id").
		Scan(&rows).Error
	return rows, err
}

func (r *showRepoGorm) UpcomingForArtist(ctx context.Context, artistID uint, boundary time.Time) ([]ArtistShow, error) {
	return r.artistShows(ctx, artistID, ">", boundary)
}

func (r *showRepoGorm) PastForArtist(ctx context.Context, artistID uint, boundary time.Time) ([]ArtistShow, error) {
	return r.artistShows(ctx, artistID, "<=", boundary)
}

func (r *showRepoGorm) CountUpcomingForVenue(ctx context.Context, venueID uint, boundary time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Show{}).
		Where("venue_id = ? AND start_time > ?", venueID, boundary).
		Count(&count).Error
	return count, err
}

func (r *showRepoGorm) CountUpcomingForArtist(ctx context.Context, artistID uint, boundary time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Show{}).
		Where("artist_id = ? AND start_time > ?", artistID, boundary).
		Count(&count).Error
	return count, err
}

func (r *showRepoGorm) DeleteForVenue(ctx context.Context, venueID uint) error {
	return r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Delete(&model.Show{}).Error
}

func (r *showRepoGorm) DeleteForArtist(ctx context.Context, artistID uint) error {
	return r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Delete(&model.Show{}).Error
}
