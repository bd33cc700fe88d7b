package notifications

import (
	"context"
	"log"

	"frontdesk/internal/appointments"
)

// AppointmentNotifierAdapter implements the appointments.Notifier interface
// and adapts calls to the unified notification system
type AppointmentNotifierAdapter struct {
	unifiedService NotificationService
}

// NewAppointmentNotifierAdapter creates a new adapter for appointment notifications
func NewAppointmentNotifierAdapter(unifiedService NotificationService) *AppointmentNotifierAdapter {
	return &AppointmentNotifierAdapter{
		unifiedService: unifiedService,
	}
}

// BookingConfirmed implements the appointments.Notifier interface
func (a *AppointmentNotifierAdapter) BookingConfirmed(ctx context.Context, appointment *appointments.Appointment, locationName string) {
	if appointment.VisitorEmail == "" {
		return
	}

	err := a.unifiedService.SendBookingConfirmed(ctx,
		appointment.VisitorEmail, appointment.VisitorName,
		appointment.TicketCode, locationName, appointment.ScheduledAt)
	if err != nil {
		log.Printf("📧 Failed to publish booking confirmation for %s: %v", appointment.TicketCode, err)
	}
}

// TicketCalled implements the appointments.Notifier interface
func (a *AppointmentNotifierAdapter) TicketCalled(ctx context.Context, appointment *appointments.Appointment, locationName string) {
	if appointment.VisitorEmail == "" {
		return
	}

	err := a.unifiedService.SendNowServing(ctx,
		appointment.VisitorEmail, appointment.VisitorName,
		appointment.TicketCode, locationName)
	if err != nil {
		log.Printf("📧 Failed to publish now-serving notification for %s: %v", appointment.TicketCode, err)
	}
}

// GetUnifiedService returns the underlying unified notification service
func (a *AppointmentNotifierAdapter) GetUnifiedService() NotificationService {
	return a.unifiedService
}
