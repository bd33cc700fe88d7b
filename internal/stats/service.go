package stats

import (
	"context"
	"fmt"
	"time"

	"frontdesk/internal/appointments"
	"frontdesk/internal/locations"
	"frontdesk/internal/queue"
	"frontdesk/pkg/cache"
)

const (
	cacheKeyDashboard = "stats:dashboard"
	cacheTTL          = 30 * time.Second
)

type Service interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	appointments appointments.Repository
	locations    locations.Service
	queue        queue.Service
	cache        cache.Service
}

func NewService(appointmentRepo appointments.Repository, locationService locations.Service,
	queueService queue.Service, cacheService cache.Service) Service {
	return &service{
		appointments: appointmentRepo,
		locations:    locationService,
		queue:        queueService,
		cache:        cacheService,
	}
}

func (s *service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	err := s.cache.GetOrSet(ctx, cacheKeyDashboard, cacheTTL, func() (interface{}, error) {
		return s.buildDashboardStats(ctx)
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *service) buildDashboardStats(ctx context.Context) (*DashboardStats, error) {
	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)

	bookingsToday, err := s.appointments.CountSince(ctx, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	servedToday, err := s.appointments.CountByStatusSince(ctx, appointments.StatusServed, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to count served appointments: %w", err)
	}

	cancelledToday, err := s.appointments.CountByStatusSince(ctx, appointments.StatusCancelled, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to count cancelled appointments: %w", err)
	}

	activeLocations, err := s.locations.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	queues := make([]LocationQueueStats, 0, len(activeLocations))
	for _, location := range activeLocations {
		locationID := location.ID.String()

		length, err := s.queue.Length(ctx, locationID)
		if err != nil {
			return nil, fmt.Errorf("failed to read queue length for %s: %w", location.Name, err)
		}

		nowServing, err := s.queue.NowServing(ctx, locationID)
		if err != nil {
			return nil, fmt.Errorf("failed to read now serving for %s: %w", location.Name, err)
		}

		queues = append(queues, LocationQueueStats{
			LocationID:   locationID,
			LocationName: location.Name,
			QueueLength:  length,
			NowServing:   nowServing,
		})
	}

	return &DashboardStats{
		BookingsToday:   bookingsToday,
		ServedToday:     servedToday,
		CancelledToday:  cancelledToday,
		ActiveLocations: len(activeLocations),
		Queues:          queues,
	}, nil
}
