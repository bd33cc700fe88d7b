package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, appointment *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	GetByTicketCode(ctx context.Context, ticketCode string) (*Appointment, error)
	Update(ctx context.Context, appointment *Appointment) error
	ListByLocation(ctx context.Context, locationID uuid.UUID, limit, offset int) ([]Appointment, error)

	// Stats queries
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByStatusSince(ctx context.Context, status Status, since time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, appointment *Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	var appointment Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *repository) GetByTicketCode(ctx context.Context, ticketCode string) (*Appointment, error) {
	var appointment Appointment
	err := r.db.WithContext(ctx).Where("ticket_code = ?", ticketCode).First(&appointment).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *repository) Update(ctx context.Context, appointment *Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *repository) ListByLocation(ctx context.Context, locationID uuid.UUID, limit, offset int) ([]Appointment, error) {
	var appointments []Appointment
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("scheduled_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *repository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Appointment{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByStatusSince(ctx context.Context, status Status, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Appointment{}).
		Where("status = ? AND updated_at >= ?", status, since).
		Count(&count).Error
	return count, err
}
