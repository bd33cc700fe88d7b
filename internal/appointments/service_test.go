package appointments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"frontdesk/internal/booking"
	"frontdesk/internal/catalog"
	"frontdesk/internal/locations"
	"frontdesk/internal/queue"
	"frontdesk/internal/shared/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	byTicket map[string]*Appointment
	created  []*Appointment
	updated  []*Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byTicket: make(map[string]*Appointment)}
}

func (f *fakeRepo) Create(ctx context.Context, appointment *Appointment) error {
	appointment.ID = uuid.New()
	f.created = append(f.created, appointment)
	f.byTicket[appointment.TicketCode] = appointment
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	for _, a := range f.byTicket {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetByTicketCode(ctx context.Context, ticketCode string) (*Appointment, error) {
	if a, ok := f.byTicket[ticketCode]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Update(ctx context.Context, appointment *Appointment) error {
	f.updated = append(f.updated, appointment)
	f.byTicket[appointment.TicketCode] = appointment
	return nil
}

func (f *fakeRepo) ListByLocation(ctx context.Context, locationID uuid.UUID, limit, offset int) ([]Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeRepo) CountByStatusSince(ctx context.Context, status Status, since time.Time) (int64, error) {
	return 0, nil
}

type fakeLocations struct {
	location *locations.Location
	err      error
}

func (f *fakeLocations) Create(ctx context.Context, req locations.CreateLocationRequest) (*locations.Location, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeLocations) GetByID(ctx context.Context, id string) (*locations.Location, error) {
	return f.location, f.err
}
func (f *fakeLocations) ListActive(ctx context.Context) ([]locations.Location, error) {
	if f.location == nil {
		return nil, nil
	}
	return []locations.Location{*f.location}, nil
}
func (f *fakeLocations) Update(ctx context.Context, id string, req locations.UpdateLocationRequest) (*locations.Location, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeLocations) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

type fakeCatalog struct {
	serviceType *catalog.ServiceType
	err         error
}

func (f *fakeCatalog) Create(ctx context.Context, req catalog.CreateServiceTypeRequest) (*catalog.ServiceType, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*catalog.ServiceType, error) {
	return f.serviceType, f.err
}
func (f *fakeCatalog) ListActive(ctx context.Context) ([]catalog.ServiceType, error) {
	return nil, nil
}
func (f *fakeCatalog) Deactivate(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

type fakeQueue struct {
	snapshot  *queue.Snapshot
	statusErr error
	joined    []string
	left      []string
}

func (f *fakeQueue) Join(ctx context.Context, locationID, ticketCode string) (int, error) {
	f.joined = append(f.joined, ticketCode)
	return len(f.joined), nil
}
func (f *fakeQueue) Leave(ctx context.Context, locationID, ticketCode string) error {
	f.left = append(f.left, ticketCode)
	return nil
}
func (f *fakeQueue) Status(ctx context.Context, locationID, ticketCode string) (*queue.Snapshot, error) {
	return f.snapshot, f.statusErr
}
func (f *fakeQueue) CallNext(ctx context.Context, locationID string) (string, error) {
	return "", queue.ErrQueueEmpty
}
func (f *fakeQueue) NowServing(ctx context.Context, locationID string) (string, error) {
	return "", nil
}
func (f *fakeQueue) Length(ctx context.Context, locationID string) (int64, error) {
	return int64(len(f.joined)), nil
}
func (f *fakeQueue) PreloadScripts(ctx context.Context) error { return nil }

type fakeNotifier struct {
	confirmed []string
	called    []string
}

func (f *fakeNotifier) BookingConfirmed(ctx context.Context, appointment *Appointment, locationName string) {
	f.confirmed = append(f.confirmed, appointment.TicketCode)
}
func (f *fakeNotifier) TicketCalled(ctx context.Context, appointment *Appointment, locationName string) {
	f.called = append(f.called, appointment.TicketCode)
}

func testBookingConfig() config.BookingConfig {
	return config.BookingConfig{
		SlotGranularity:  15 * time.Minute,
		QueueSnapshotMax: 50,
		TicketPrefix:     "FD",
	}
}

func testLocation() *locations.Location {
	return &locations.Location{
		ID:                  uuid.New(),
		Name:                "Downtown Service Center",
		Active:              true,
		CheckInInstructions: "Check in at desk 3.",
		LateInstructions:    "Ten minute grace period.",
		ContactInstructions: "Call the branch.",
	}
}

func testServiceType() *catalog.ServiceType {
	return &catalog.ServiceType{
		ID:              uuid.New(),
		Name:            "Document Pickup",
		Slug:            "document-pickup",
		DurationMinutes: 10,
		Active:          true,
	}
}

func bookRequest(location *locations.Location, serviceType *catalog.ServiceType) booking.Request {
	return booking.Request{
		Name:       "Ada Lovelace",
		Phone:      "555-0101",
		Email:      "ada@example.com",
		LocationID: location.ID.String(),
		ServiceID:  serviceType.ID.String(),
	}
}

func TestBookAssemblesResult(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	repo := newFakeRepo()
	q := &fakeQueue{snapshot: &queue.Snapshot{
		Waiting:    []string{"FD-OTHER1"},
		NowServing: "FD-NOW001",
		TotalAhead: 1,
	}}
	notifier := &fakeNotifier{}

	svc := NewService(repo, &fakeLocations{location: location}, &fakeCatalog{serviceType: serviceType},
		q, notifier, testBookingConfig())

	result, err := svc.Book(context.Background(), bookRequest(location, serviceType))

	require.NoError(t, err)
	assert.True(t, result.Success)

	require.NotNil(t, result.Appointment)
	assert.True(t, strings.HasPrefix(result.Appointment.TicketID, "FD-"), "ticket %q", result.Appointment.TicketID)
	assert.Equal(t, string(StatusConfirmed), result.Appointment.Status)

	scheduled, parseErr := time.Parse(time.RFC3339, result.Appointment.ScheduledTime)
	require.NoError(t, parseErr)
	assert.Zero(t, scheduled.Minute()%15, "scheduled time should sit on a slot boundary")

	require.NotNil(t, result.User)
	assert.Equal(t, "Ada Lovelace", result.User.Name)

	require.NotNil(t, result.Queue)
	assert.Equal(t, 1, result.Queue.TotalAhead)
	assert.Equal(t, "FD-NOW001", result.Queue.NowServing)

	require.NotNil(t, result.Instructions)
	assert.Equal(t, "Check in at desk 3.", result.Instructions.CheckIn)
	assert.Equal(t, "Ten minute grace period.", result.Instructions.Late)
	assert.Equal(t, "Call the branch.", result.Instructions.Contact)

	require.Len(t, repo.created, 1)
	assert.Equal(t, repo.created[0].TicketCode, result.Appointment.TicketID)
	assert.Equal(t, []string{result.Appointment.TicketID}, q.joined)
	assert.Equal(t, []string{result.Appointment.TicketID}, notifier.confirmed)
}

func TestBookOmitsQueueSectionOnStatusError(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	q := &fakeQueue{statusErr: errors.New("redis down")}

	svc := NewService(newFakeRepo(), &fakeLocations{location: location}, &fakeCatalog{serviceType: serviceType},
		q, nil, testBookingConfig())

	result, err := svc.Book(context.Background(), bookRequest(location, serviceType))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Nil(t, result.Queue)
	assert.NotNil(t, result.Appointment)
}

func TestBookUnknownLocation(t *testing.T) {
	serviceType := testServiceType()

	svc := NewService(newFakeRepo(), &fakeLocations{err: locations.ErrLocationNotFound},
		&fakeCatalog{serviceType: serviceType}, &fakeQueue{}, nil, testBookingConfig())

	_, err := svc.Book(context.Background(), booking.Request{
		Name:       "Ada",
		LocationID: uuid.NewString(),
		ServiceID:  serviceType.ID.String(),
	})

	assert.ErrorIs(t, err, locations.ErrLocationNotFound)
}

func TestBookInactiveService(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	serviceType.Active = false

	svc := NewService(newFakeRepo(), &fakeLocations{location: location},
		&fakeCatalog{serviceType: serviceType}, &fakeQueue{}, nil, testBookingConfig())

	_, err := svc.Book(context.Background(), bookRequest(location, serviceType))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not bookable")
}

func TestCancelConfirmedAppointment(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	repo := newFakeRepo()
	q := &fakeQueue{snapshot: &queue.Snapshot{TotalAhead: 0}}

	svc := NewService(repo, &fakeLocations{location: location}, &fakeCatalog{serviceType: serviceType},
		q, nil, testBookingConfig())

	result, err := svc.Book(context.Background(), bookRequest(location, serviceType))
	require.NoError(t, err)
	ticket := result.Appointment.TicketID

	err = svc.Cancel(context.Background(), ticket)

	require.NoError(t, err)
	stored, _ := repo.GetByTicketCode(context.Background(), ticket)
	assert.Equal(t, StatusCancelled, stored.Status)
	assert.NotNil(t, stored.CancelledAt)
	assert.Equal(t, []string{ticket}, q.left)
}

func TestCancelAlreadyCalledAppointment(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	repo := newFakeRepo()

	svc := NewService(repo, &fakeLocations{location: location}, &fakeCatalog{serviceType: serviceType},
		&fakeQueue{snapshot: &queue.Snapshot{}}, nil, testBookingConfig())

	result, err := svc.Book(context.Background(), bookRequest(location, serviceType))
	require.NoError(t, err)
	ticket := result.Appointment.TicketID

	svc.TicketCalled(context.Background(), location.ID.String(), ticket)

	err = svc.Cancel(context.Background(), ticket)

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCheckInConfirmedAppointment(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	repo := newFakeRepo()

	svc := NewService(repo, &fakeLocations{location: location}, &fakeCatalog{serviceType: serviceType},
		&fakeQueue{snapshot: &queue.Snapshot{}}, nil, testBookingConfig())

	result, err := svc.Book(context.Background(), bookRequest(location, serviceType))
	require.NoError(t, err)
	ticket := result.Appointment.TicketID

	err = svc.CheckIn(context.Background(), ticket)

	require.NoError(t, err)
	stored, _ := repo.GetByTicketCode(context.Background(), ticket)
	assert.Equal(t, StatusCheckedIn, stored.Status)
}

func TestCheckInCalledAppointment(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	repo := newFakeRepo()

	svc := NewService(repo, &fakeLocations{location: location}, &fakeCatalog{serviceType: serviceType},
		&fakeQueue{snapshot: &queue.Snapshot{}}, nil, testBookingConfig())

	result, err := svc.Book(context.Background(), bookRequest(location, serviceType))
	require.NoError(t, err)
	ticket := result.Appointment.TicketID

	svc.TicketCalled(context.Background(), location.ID.String(), ticket)

	err = svc.CheckIn(context.Background(), ticket)

	require.NoError(t, err)
	stored, _ := repo.GetByTicketCode(context.Background(), ticket)
	assert.Equal(t, StatusCheckedIn, stored.Status)
}

func TestCheckInCancelledAppointment(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	repo := newFakeRepo()

	svc := NewService(repo, &fakeLocations{location: location}, &fakeCatalog{serviceType: serviceType},
		&fakeQueue{snapshot: &queue.Snapshot{}}, nil, testBookingConfig())

	result, err := svc.Book(context.Background(), bookRequest(location, serviceType))
	require.NoError(t, err)
	ticket := result.Appointment.TicketID

	require.NoError(t, svc.Cancel(context.Background(), ticket))

	err = svc.CheckIn(context.Background(), ticket)

	assert.ErrorIs(t, err, ErrCannotCheckIn)
}

func TestCheckInUnknownTicket(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeLocations{}, &fakeCatalog{}, &fakeQueue{}, nil, testBookingConfig())

	err := svc.CheckIn(context.Background(), "FD-MISSING")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelUnknownTicket(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeLocations{}, &fakeCatalog{}, &fakeQueue{}, nil, testBookingConfig())

	err := svc.Cancel(context.Background(), "FD-MISSING")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestTicketCalledMarksAndNotifies(t *testing.T) {
	location := testLocation()
	serviceType := testServiceType()
	repo := newFakeRepo()
	notifier := &fakeNotifier{}

	svc := NewService(repo, &fakeLocations{location: location}, &fakeCatalog{serviceType: serviceType},
		&fakeQueue{snapshot: &queue.Snapshot{}}, notifier, testBookingConfig())

	result, err := svc.Book(context.Background(), bookRequest(location, serviceType))
	require.NoError(t, err)
	ticket := result.Appointment.TicketID

	svc.TicketCalled(context.Background(), location.ID.String(), ticket)

	stored, _ := repo.GetByTicketCode(context.Background(), ticket)
	assert.Equal(t, StatusCalled, stored.Status)
	assert.Equal(t, []string{ticket}, notifier.called)
}
