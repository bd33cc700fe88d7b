package locations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frontdesk/pkg/cache"
	"frontdesk/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("location not found")

const (
	cacheKeyActive  = "locations:active"
	cacheKeyByIDFmt = "locations:id:%s"
	cacheTTL        = 10 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateLocationRequest) (*Location, error)
	GetByID(ctx context.Context, id string) (*Location, error)
	ListActive(ctx context.Context) ([]Location, error)
	Update(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error)
	Delete(ctx context.Context, id string) error
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

func (s *service) Create(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check location name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("location with name '%s' already exists", req.Name)
	}

	location := &Location{
		Name:                req.Name,
		Address:             req.Address,
		DeskInfo:            req.DeskInfo,
		Active:              true,
		CheckInInstructions: req.CheckInInstructions,
		LateInstructions:    req.LateInstructions,
		ContactInstructions: req.ContactInstructions,
	}

	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.invalidate(ctx)
	return location, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Location, error) {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid location ID: %w", err)
	}

	var location Location
	key := fmt.Sprintf(cacheKeyByIDFmt, id)
	err = s.cache.GetOrSet(ctx, key, cacheTTL, func() (interface{}, error) {
		loc, err := s.repo.GetByID(ctx, locationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLocationNotFound
			}
			return nil, err
		}
		return loc, nil
	}, &location)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *service) ListActive(ctx context.Context) ([]Location, error) {
	var locations []Location
	err := s.cache.GetOrSet(ctx, cacheKeyActive, cacheTTL, func() (interface{}, error) {
		return s.repo.List(ctx, true)
	}, &locations)
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid location ID: %w", err)
	}

	location, err := s.repo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.DeskInfo != nil {
		location.DeskInfo = *req.DeskInfo
	}
	if req.Active != nil {
		location.Active = *req.Active
	}
	if req.CheckInInstructions != nil {
		location.CheckInInstructions = *req.CheckInInstructions
	}
	if req.LateInstructions != nil {
		location.LateInstructions = *req.LateInstructions
	}
	if req.ContactInstructions != nil {
		location.ContactInstructions = *req.ContactInstructions
	}

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	s.invalidate(ctx)
	return location, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid location ID: %w", err)
	}

	if err := s.repo.Delete(ctx, locationID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	// Best effort; stale entries expire via TTL anyway
	if err := s.cache.Delete(ctx, cacheKeyActive); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to invalidate location cache", err,
			map[string]interface{}{"key": cacheKeyActive})
	}
	if err := s.cache.DeletePattern(ctx, "locations:id:*"); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to invalidate location cache", err,
			map[string]interface{}{"pattern": "locations:id:*"})
	}
}
