package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, serviceType *ServiceType) error
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceType, error)
	GetBySlug(ctx context.Context, slug string) (*ServiceType, error)
	List(ctx context.Context, activeOnly bool) ([]ServiceType, error)
	Update(ctx context.Context, serviceType *ServiceType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, serviceType *ServiceType) error {
	return r.db.WithContext(ctx).Create(serviceType).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*ServiceType, error) {
	var serviceType ServiceType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&serviceType).Error
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*ServiceType, error) {
	var serviceType ServiceType
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&serviceType).Error
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]ServiceType, error) {
	var serviceTypes []ServiceType
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&serviceTypes).Error; err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

func (r *repository) Update(ctx context.Context, serviceType *ServiceType) error {
	return r.db.WithContext(ctx).Save(serviceType).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ServiceType{}, "id = ?", id).Error
}
