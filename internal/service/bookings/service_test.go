package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopoint/TableReservationService/internal/domain"
	bookingRepo "github.com/restopoint/TableReservationService/internal/infra/storage/booking"
	"github.com/restopoint/TableReservationService/internal/integrations/crmservice"
	"github.com/restopoint/TableReservationService/internal/service/bookings/models"
	"github.com/restopoint/TableReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m}
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if b.LocationID != filter.LocationID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type recordingCRM struct {
	activities []crmservice.ActivityType
	err        error
}

func (c *recordingCRM) SyncGuestActivity(ctx context.Context, event *crmservice.GuestActivityEvent) error {
	c.activities = append(c.activities, event.Activity)
	return c.err
}

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		LocationID:   1,
		CustomerName: "Петр Иванов",
		GuestCount:   2,
		BookingDate:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckinTime:  "19:00",
		CheckoutTime: "21:00",
		Status:       status,
		TableNumber:  ptr.Ptr(3),
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeBookingRepo(booking(1, domain.StatusConfirmed)), &recordingCRM{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	crm := &recordingCRM{}
	svc := NewService(repo, crm, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	assert.Equal(t, []crmservice.ActivityType{crmservice.ActivityBookingCancelled}, crm.activities)

	// Повторная отмена отклоняется: статус уже терминальный
	assert.ErrorIs(t, svc.Cancel(context.Background(), 1), ErrCannotCancel)
}

func TestCancel_CompletedRejected(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusCompleted))
	svc := NewService(repo, &recordingCRM{}, nopLogger{})

	assert.ErrorIs(t, svc.Cancel(context.Background(), 1), ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &recordingCRM{}, nopLogger{})

	assert.ErrorIs(t, svc.Cancel(context.Background(), 404), ErrBookingNotFound)
}

func TestCancel_CRMFailureDoesNotFailCancel(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusConfirmed))
	crm := &recordingCRM{err: crmservice.ErrServiceDegraded}
	svc := NewService(repo, crm, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestComplete(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusConfirmed), booking(2, domain.StatusPending))
	crm := &recordingCRM{}
	svc := NewService(repo, crm, nopLogger{})

	require.NoError(t, svc.Complete(context.Background(), 1))
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
	assert.Equal(t, []crmservice.ActivityType{crmservice.ActivityBookingCompleted}, crm.activities)

	// Завершить можно только подтвержденное бронирование
	assert.ErrorIs(t, svc.Complete(context.Background(), 2), ErrCannotComplete)
}

func TestGetLocationBookings(t *testing.T) {
	repo := newFakeBookingRepo(
		booking(1, domain.StatusConfirmed),
		booking(2, domain.StatusPending),
		booking(3, domain.StatusCancelled),
	)
	svc := NewService(repo, &recordingCRM{}, nopLogger{})

	resp, err := svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{LocationID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{
		LocationID:      1,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)

	status := "confirmed"
	resp, err = svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{
		LocationID: 1,
		Status:     &status,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetLocationBookings_InvalidInput(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &recordingCRM{}, nopLogger{})

	_, err := svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{LocationID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bogus := "bogus"
	_, err = svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{
		LocationID: 1,
		Status:     &bogus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
