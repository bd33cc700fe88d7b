package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/pkg/cache"
	"frontdesk/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrServiceTypeNotFound = errors.New("service type not found")

const (
	cacheKeyActive = "catalog:active"
	cacheTTL       = 10 * time.Minute
)

type CreateServiceTypeRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=120"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=5,max=240"`
}

type Service interface {
	Create(ctx context.Context, req CreateServiceTypeRequest) (*ServiceType, error)
	GetByID(ctx context.Context, id string) (*ServiceType, error)
	ListActive(ctx context.Context) ([]ServiceType, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) Create(ctx context.Context, req CreateServiceTypeRequest) (*ServiceType, error) {
	slug := slugify(req.Name)

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check service slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("service type '%s' already exists", req.Name)
	}

	serviceType := &ServiceType{
		Name:            req.Name,
		Slug:            slug,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}

	if err := s.repo.Create(ctx, serviceType); err != nil {
		return nil, fmt.Errorf("failed to create service type: %w", err)
	}

	s.invalidate(ctx)
	return serviceType, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ServiceType, error) {
	serviceTypeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid service type ID: %w", err)
	}

	serviceType, err := s.repo.GetByID(ctx, serviceTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceTypeNotFound
		}
		return nil, err
	}
	return serviceType, nil
}

func (s *service) ListActive(ctx context.Context) ([]ServiceType, error) {
	var serviceTypes []ServiceType
	err := s.cache.GetOrSet(ctx, cacheKeyActive, cacheTTL, func() (interface{}, error) {
		return s.repo.List(ctx, true)
	}, &serviceTypes)
	if err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	serviceType, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	serviceType.Active = false
	if err := s.repo.Update(ctx, serviceType); err != nil {
		return fmt.Errorf("failed to deactivate service type: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	// Best effort; stale entries expire via TTL anyway
	if err := s.cache.Delete(ctx, cacheKeyActive); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to invalidate service type cache", err,
			map[string]interface{}{"key": cacheKeyActive})
	}
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
