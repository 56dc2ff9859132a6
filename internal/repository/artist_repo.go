package repository

import (
	"context"

	"gorm.io/gorm"

	"gigboard/internal/model"
)

type ArtistRepo interface {
	WithTx(tx *gorm.DB) ArtistRepo
	Create(ctx context.Context, artist *model.Artist) error
	GetByID(ctx context.Context, id uint) (*model.Artist, error)
	ListAll(ctx context.Context) ([]model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]model.Artist, error)
	Update(ctx context.Context, artist *model.Artist) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type artistRepoGorm struct {
	db *gorm.DB
}

var _ ArtistRepo = (*artistRepoGorm)(nil)

func NewArtistRepoGorm(db *gorm.DB) *artistRepoGorm {
	return &artistRepoGorm{
		db: db,
	}
}

func (r *artistRepoGorm) WithTx(tx *gorm.DB) ArtistRepo {
	return &artistRepoGorm{
		db: tx,
	}
}

func (r *artistRepoGorm) Create(ctx context.Context, artist *model.Artist) error {
	return gorm.G[model.Artist](r.db).Create(ctx, artist)
}

func (r *artistRepoGorm) GetByID(ctx context.Context, id uint) (*model.Artist, error) {
	artist, err := gorm.G[model.Artist](r.db).Where(&model.Artist{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepoGorm) ListAll(ctx context.Context) ([]model.Artist, error) {
	return gorm.G[model.Artist](r.db).Order("id").Find(ctx)
}

func (r *artistRepoGorm) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	return gorm.G[model.Artist](r.db).Where("name ILIKE ?", "%"+term+"%").Find(ctx)
}

func (r *artistRepoGorm) Update(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Save(artist).Error
}

func (r *artistRepoGorm) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Artist{}, id)
	return res.RowsAffected, res.Error
}
