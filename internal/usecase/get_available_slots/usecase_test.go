package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/pkg/ptr"
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
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) ListActiveWithCapacity(ctx context.Context, locationID int64, minCapacity int) ([]*domain.Table, error) {
	result := make([]*domain.Table, 0, len(f.tables))
	for _, t := range f.tables {
		if t.IsAvailable && t.Capacity >= minCapacity {
			result = append(result, t)
		}
	}
	return result, nil
}

type fakeLocationRepo struct {
	location *domain.Location
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return f.location, nil
}

func testLocation() *domain.Location {
	return &domain.Location{
		ID:                     1,
		ScheduleMode:           domain.ScheduleModeSimple,
		OpeningTime:            "18:00",
		ClosingTime:            "22:00",
		SlotIntervalMinutes:    60,
		ServiceDurationMinutes: 120,
		AllowWeekendBookings:   true,
		MaxAdvanceBookingDays:  30,
	}
}

func confirmedAt(tableNumber int, checkin, checkout types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:           100,
		LocationID:   1,
		GuestCount:   2,
		CheckinTime:  checkin,
		CheckoutTime: checkout,
		Status:       domain.StatusConfirmed,
		TableNumber:  ptr.Ptr(tableNumber),
	}
}

func newTestUseCase(bookings []*domain.Booking, tables []*domain.Table, loc *domain.Location, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeTableRepo{tables: tables},
		&fakeLocationRepo{location: loc},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_PerSlotCounts(t *testing.T) {
	tables := []*domain.Table{
		{ID: 1, LocationID: 1, TableNumber: 1, Capacity: 4, IsAvailable: true},
		{ID: 2, LocationID: 1, TableNumber: 2, Capacity: 6, IsAvailable: true},
	}
	bookings := []*domain.Booking{confirmedAt(1, "19:00", "21:00")}

	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(bookings, tables, testLocation(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID: 1,
		Date:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		PartySize:  2,
	})

	require.NoError(t, err)
	assert.True(t, resp.Bookable)
	require.Len(t, resp.Slots, 4)

	// Посадка 120 минут: слот 18:00 пересекается с 19:00-21:00,
	// слот 20:00 тоже (20:00-22:00), свободен от пересечений только стол 2
	byTime := make(map[types.TimeString]domain.SlotAvailability, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.StartTime] = s
		assert.Equal(t, 2, s.TotalTables)
		assert.Equal(t, 120, s.DurationMinutes)
	}

	assert.Equal(t, 1, byTime["18:00"].AvailableTables)
	assert.Equal(t, 1, byTime["19:00"].AvailableTables)
	assert.Equal(t, 1, byTime["20:00"].AvailableTables)
	// 21:00-23:00 не пересекается с 19:00-21:00
	assert.Equal(t, 2, byTime["21:00"].AvailableTables)
}

func TestExecute_ClosedDateIsNotAnError(t *testing.T) {
	loc := testLocation()
	loc.SpecialClosedDates = map[string]struct{}{"2026-03-10": {}}

	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, loc, now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID: 1,
		Date:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.Bookable)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PartySizeFiltersTables(t *testing.T) {
	tables := []*domain.Table{
		{ID: 1, LocationID: 1, TableNumber: 1, Capacity: 2, IsAvailable: true},
		{ID: 2, LocationID: 1, TableNumber: 2, Capacity: 6, IsAvailable: true},
	}

	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, tables, testLocation(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationID: 1,
		Date:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		PartySize:  5,
	})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.Equal(t, 1, s.TotalTables)
		assert.Equal(t, 1, s.AvailableTables)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, testLocation(), time.Now())

	_, err := uc.Execute(context.Background(), &Request{LocationID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{LocationID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
