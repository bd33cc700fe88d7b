package locations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, location *Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	GetByName(ctx context.Context, name string) (*Location, error)
	List(ctx context.Context, activeOnly bool) ([]Location, error)
	Update(ctx context.Context, location *Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, location *Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	var location Location
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Location, error) {
	var location Location
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Location, error) {
	var locations []Location
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *repository) Update(ctx context.Context, location *Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Location{}, "id = ?", id).Error
}
