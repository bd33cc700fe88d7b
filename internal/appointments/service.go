package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/internal/booking"
	"frontdesk/internal/catalog"
	"frontdesk/internal/locations"
	"frontdesk/internal/queue"
	"frontdesk/internal/shared/config"
	"frontdesk/pkg/logger"
	"frontdesk/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCannotCancel        = errors.New("appointment can no longer be cancelled")
	ErrCannotCheckIn       = errors.New("appointment cannot be checked in")
)

// Notifier publishes visitor-facing notifications. Defined here so the
// service does not depend on the notifications package directly.
type Notifier interface {
	BookingConfirmed(ctx context.Context, appointment *Appointment, locationName string)
	TicketCalled(ctx context.Context, appointment *Appointment, locationName string)
}

type Service interface {
	// Book creates an appointment, joins the location queue and
	// assembles the booking result handed back to the visitor.
	Book(ctx context.Context, req booking.Request) (*booking.Result, error)

	GetByTicket(ctx context.Context, ticketCode string) (*Appointment, error)
	Cancel(ctx context.Context, ticketCode string) error
	CheckIn(ctx context.Context, ticketCode string) error
	MarkServed(ctx context.Context, ticketCode string) error

	// TicketCalled reacts to a desk calling a ticket; implements
	// queue.CalledNotifier.
	TicketCalled(ctx context.Context, locationID, ticketCode string)
}

type service struct {
	repo      Repository
	locations locations.Service
	catalog   catalog.Service
	queue     queue.Service
	notifier  Notifier
	config    config.BookingConfig
}

func NewService(repo Repository, locationService locations.Service, catalogService catalog.Service,
	queueService queue.Service, notifier Notifier, cfg config.BookingConfig) Service {
	return &service{
		repo:      repo,
		locations: locationService,
		catalog:   catalogService,
		queue:     queueService,
		notifier:  notifier,
		config:    cfg,
	}
}

func (s *service) Book(ctx context.Context, req booking.Request) (*booking.Result, error) {
	location, err := s.locations.GetByID(ctx, req.LocationID)
	if err != nil {
		metrics.TrackBooking(req.LocationID, "failure")
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}

	serviceType, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		metrics.TrackBooking(req.LocationID, "failure")
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}
	if !serviceType.Active {
		metrics.TrackBooking(req.LocationID, "failure")
		return nil, fmt.Errorf("service '%s' is not bookable", serviceType.Name)
	}

	scheduledAt := s.resolveSchedule(req.PreferredAt)

	appointment := &Appointment{
		TicketCode:   s.generateTicketCode(),
		LocationID:   location.ID,
		ServiceID:    serviceType.ID,
		VisitorName:  req.Name,
		VisitorPhone: req.Phone,
		VisitorEmail: req.Email,
		ScheduledAt:  scheduledAt,
		Status:       StatusConfirmed,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		metrics.TrackBooking(req.LocationID, "failure")
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	locationID := location.ID.String()
	if _, err := s.queue.Join(ctx, locationID, appointment.TicketCode); err != nil {
		// The appointment stands even if the queue write fails; the
		// result simply omits the queue section.
		logger.GetDefault().ErrorWithContext(ctx, "failed to join queue after booking", err,
			map[string]interface{}{"ticket_code": appointment.TicketCode})
	}

	if s.notifier != nil {
		s.notifier.BookingConfirmed(ctx, appointment, location.Name)
	}

	logger.GetDefault().LogAppointmentBooked(ctx, appointment.TicketCode, locationID)
	metrics.TrackBooking(locationID, "success")

	return s.assembleResult(ctx, appointment, location), nil
}

// assembleResult projects an appointment and its surroundings into the
// result payload consumed by the booking page. Sections that cannot be
// resolved are left absent rather than failing the whole booking.
func (s *service) assembleResult(ctx context.Context, appointment *Appointment, location *locations.Location) *booking.Result {
	result := &booking.Result{
		Success: true,
		Appointment: &booking.Appointment{
			TicketID:      appointment.TicketCode,
			ScheduledTime: appointment.ScheduledAt.Format(time.RFC3339),
			Date:          appointment.ScheduledAt.Format("2006-01-02"),
			Time:          appointment.ScheduledAt.Format("15:04"),
			Status:        appointment.Status.String(),
		},
		User: &booking.User{
			Name:  appointment.VisitorName,
			Phone: appointment.VisitorPhone,
			Email: appointment.VisitorEmail,
		},
		Instructions: &booking.Instructions{
			CheckIn: location.CheckInInstructions,
			Late:    location.LateInstructions,
			Contact: location.ContactInstructions,
		},
		Message: fmt.Sprintf("Appointment booked at %s", location.Name),
	}

	snapshot, err := s.queue.Status(ctx, location.ID.String(), appointment.TicketCode)
	if err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to read queue status for result", err,
			map[string]interface{}{"ticket_code": appointment.TicketCode})
		return result
	}

	result.Queue = &booking.QueueStatus{
		Current:    snapshot.Waiting,
		NowServing: snapshot.NowServing,
		TotalAhead: snapshot.TotalAhead,
	}

	return result
}

func (s *service) GetByTicket(ctx context.Context, ticketCode string) (*Appointment, error) {
	appointment, err := s.repo.GetByTicketCode(ctx, ticketCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

func (s *service) Cancel(ctx context.Context, ticketCode string) error {
	appointment, err := s.GetByTicket(ctx, ticketCode)
	if err != nil {
		return err
	}

	if !appointment.Status.CanBeCancelled() {
		return ErrCannotCancel
	}

	appointment.Cancel()
	if err := s.repo.Update(ctx, appointment); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	locationID := appointment.LocationID.String()
	if err := s.queue.Leave(ctx, locationID, ticketCode); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to remove cancelled ticket from queue", err,
			map[string]interface{}{"ticket_code": ticketCode})
	}

	logger.GetDefault().LogAppointmentCancelled(ctx, ticketCode, locationID)
	return nil
}

func (s *service) CheckIn(ctx context.Context, ticketCode string) error {
	appointment, err := s.GetByTicket(ctx, ticketCode)
	if err != nil {
		return err
	}

	if !appointment.Status.CanCheckIn() {
		return ErrCannotCheckIn
	}

	appointment.Status = StatusCheckedIn
	if err := s.repo.Update(ctx, appointment); err != nil {
		return fmt.Errorf("failed to check in appointment: %w", err)
	}
	return nil
}

func (s *service) MarkServed(ctx context.Context, ticketCode string) error {
	appointment, err := s.GetByTicket(ctx, ticketCode)
	if err != nil {
		return err
	}

	appointment.Status = StatusServed
	if err := s.repo.Update(ctx, appointment); err != nil {
		return fmt.Errorf("failed to mark appointment served: %w", err)
	}
	return nil
}

func (s *service) TicketCalled(ctx context.Context, locationID, ticketCode string) {
	appointment, err := s.GetByTicket(ctx, ticketCode)
	if err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "called ticket has no appointment", err,
			map[string]interface{}{"ticket_code": ticketCode, "location_id": locationID})
		return
	}

	appointment.Status = StatusCalled
	if err := s.repo.Update(ctx, appointment); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "failed to mark ticket called", err,
			map[string]interface{}{"ticket_code": ticketCode})
	}

	if s.notifier != nil {
		locationName := locationID
		if location, err := s.locations.GetByID(ctx, locationID); err == nil {
			locationName = location.Name
		}
		s.notifier.TicketCalled(ctx, appointment, locationName)
	}
}

// resolveSchedule parses the visitor's preferred time and rounds it up
// to the next slot boundary. Anything unparseable falls back to now.
func (s *service) resolveSchedule(preferred string) time.Time {
	at := time.Now().UTC()
	if preferred != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"} {
			if parsed, err := time.Parse(layout, preferred); err == nil {
				at = parsed.UTC()
				break
			}
		}
	}

	granularity := s.config.SlotGranularity
	if granularity <= 0 {
		granularity = 15 * time.Minute
	}
	rounded := at.Truncate(granularity)
	if rounded.Before(at) {
		rounded = rounded.Add(granularity)
	}
	return rounded
}

func (s *service) generateTicketCode() string {
	prefix := s.config.TicketPrefix
	if prefix == "" {
		prefix = "FD"
	}
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("%s-%s", prefix, raw[:6])
}
