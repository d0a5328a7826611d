package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/internal/integrations/crmservice"
	"github.com/restopoint/TableReservationService/internal/service/availability"
	"github.com/restopoint/TableReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

type fakeLocationRepo struct {
	location *domain.Location
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return f.location, nil
}

type fakeResolver struct {
	available bool
	lastQuery availability.Query
}

func (f *fakeResolver) IsAvailable(ctx context.Context, q availability.Query) (bool, error) {
	f.lastQuery = q
	return f.available, nil
}

type recordingCRM struct {
	events []*crmservice.GuestActivityEvent
	err    error
}

func (c *recordingCRM) SyncGuestActivity(ctx context.Context, event *crmservice.GuestActivityEvent) error {
	c.events = append(c.events, event)
	return c.err
}

func testLocation() *domain.Location {
	return &domain.Location{
		ID:                     1,
		ScheduleMode:           domain.ScheduleModeSimple,
		OpeningTime:            "10:00",
		ClosingTime:            "23:00",
		SlotIntervalMinutes:    30,
		ServiceDurationMinutes: 120,
		MinAdvanceBookingHours: 2,
		MaxAdvanceBookingDays:  30,
		AllowWeekendBookings:   true,
	}
}

func validRequest() *Request {
	return &Request{
		LocationID:    1,
		CustomerName:  "Анна Смирнова",
		CustomerPhone: "+79991234567",
		GuestCount:    4,
		Date:          time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckinTime:   "19:00",
	}
}

func newTestUseCase(repo *fakeBookingRepo, loc *domain.Location, resolver *fakeResolver, crm *recordingCRM) *UseCase {
	uc := NewUseCase(repo, &fakeLocationRepo{location: loc}, resolver, crm, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	crm := &recordingCRM{}
	uc := newTestUseCase(repo, testLocation(), &fakeResolver{available: true}, crm)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "public", resp.Source)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Nil(t, repo.created.TableNumber)

	// Уход выводится из длительности посадки локации
	assert.Equal(t, types.TimeString("21:00"), repo.created.CheckoutTime)

	require.Len(t, crm.events, 1)
}

func TestExecute_ExplicitCheckoutHonored(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, testLocation(), &fakeResolver{available: true}, &recordingCRM{})

	req := validRequest()
	req.CheckoutTime = "22:00"
	req.Source = "manager"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("22:00"), resp.CheckoutTime)
	assert.Equal(t, "manager", resp.Source)
}

func TestExecute_DateGateRejects(t *testing.T) {
	loc := testLocation()
	loc.SpecialClosedDates = map[string]struct{}{"2026-03-10": {}}
	uc := newTestUseCase(&fakeBookingRepo{}, loc, &fakeResolver{available: true}, &recordingCRM{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testLocation(), &fakeResolver{available: true}, &recordingCRM{})

	req := validRequest()
	req.CheckinTime = "19:10"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, testLocation(), &fakeResolver{available: false}, &recordingCRM{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_CRMFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	crm := &recordingCRM{err: crmservice.ErrServiceDegraded}
	uc := newTestUseCase(repo, testLocation(), &fakeResolver{available: true}, crm)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing name", func(r *Request) { r.CustomerName = "  " }},
		{"missing phone", func(r *Request) { r.CustomerPhone = "" }},
		{"zero guests", func(r *Request) { r.GuestCount = 0 }},
		{"too many guests", func(r *Request) { r.GuestCount = domain.MaxGuestCount + 1 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"missing checkin", func(r *Request) { r.CheckinTime = "" }},
		{"malformed checkin", func(r *Request) { r.CheckinTime = "25:99" }},
		{"checkout before checkin", func(r *Request) { r.CheckoutTime = "18:00" }},
		{"duration too short", func(r *Request) { r.CheckoutTime = "19:30" }},
		{"duration too long", func(r *Request) { r.CheckinTime = "10:00"; r.CheckoutTime = "17:00" }},
		{"unknown source", func(r *Request) { r.Source = "walkin" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest()))
	})
}
