package repository

import (
	"context"

	"gorm.io/gorm"

	"gigboard/internal/model"
)

// VenueGroup is one distinct (city, state) pair and every venue stored
// under it. Grouping is exact-string match on both fields.
type VenueGroup struct {
	City   string
	State  string
	Venues []model.Venue
}

type VenueRepo interface {
	WithTx(tx *gorm.DB) VenueRepo
	Create(ctx context.Context, venue *model.Venue) error
	GetByID(ctx context.Context, id uint) (*model.Venue, error)
	ListAll(ctx context.Context) ([]model.Venue, error)
	GroupedByLocation(ctx context.Context) ([]VenueGroup, error)
	SearchByName(ctx context.Context, term string) ([]model.Venue, error)
	Update(ctx context.Context, venue *model.Venue) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type venueRepoGorm struct {
	db *gorm.DB
}

var _ VenueRepo = (*venueRepoGorm)(nil)

func NewVenueRepoGorm(db *gorm.DB) *venueRepoGorm {
	return &venueRepoGorm{
		db: db,
	}
}

func (r *venueRepoGorm) WithTx(tx *gorm.DB) VenueRepo {
	return &venueRepoGorm{
		db: tx,
	}
}

func (r *venueRepoGorm) Create(ctx context.Context, venue *model.Venue) error {
	return gorm.G[model.Venue](r.db).Create(ctx, venue)
}

func (r *venueRepoGorm) GetByID(ctx context.Context, id uint) (*model.Venue, error) {
	venue, err := gorm.G[model.Venue](r.db).Where(&model.Venue{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepoGorm) ListAll(ctx context.Context) ([]model.Venue, error) {
	return gorm.G[model.Venue](r.db).Order("state, city, id").Find(ctx)
}

func (r *venueRepoGorm) GroupedByLocation(ctx context.Context) ([]VenueGroup, error) {
	venues, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]VenueGroup, 0)
	index := make(map[[2]string]int)
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, VenueGroup{City: v.City, State: v.State})
		}
		groups[i].Venues = append(groups[i].Venues, v)
	}
	return groups, nil
}

func (r *venueRepoGorm) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	return gorm.G[model.Venue](r.db).Where("name ILIKE ?", "%"+term+"%").Find(ctx)
}

func (r *venueRepoGorm) Update(ctx context.Context, venue *model.Venue) error {
	// Save writes every column so cleared booleans and strings stick.
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *venueRepoGorm) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Venue{}, id)
	return res.RowsAffected, res.Error
}
