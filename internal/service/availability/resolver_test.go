package availability

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

// stubBookingRepo отдает фиксированный список бронирований
type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, nil
}

// stubTableRepo отдает фиксированный список столов (в порядке аллокации)
type stubTableRepo struct {
	tables []*domain.Table
}

func (s *stubTableRepo) ListActiveWithCapacity(ctx context.Context, locationID int64, minCapacity int) ([]*domain.Table, error) {
	filtered := make([]*domain.Table, 0, len(s.tables))
	for _, t := range s.tables {
		if t.IsAvailable && t.Capacity >= minCapacity {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

type stubLocationRepo struct {
	location *domain.Location
}

func (s *stubLocationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return s.location, nil
}

func table(number, capacity int) *domain.Table {
	return &domain.Table{
		ID:          int64(number),
		LocationID:  1,
		TableNumber: number,
		Capacity:    capacity,
		IsAvailable: true,
	}
}

func assignedBooking(tableNumber int, checkin, checkout types.TimeString) *domain.Booking {
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

func TestFreeTables_OverlapExcludesTable(t *testing.T) {
	tables := []*domain.Table{table(1, 4), table(2, 6)}
	bookings := []*domain.Booking{assignedBooking(1, "19:00", "20:30")}

	free := FreeTables(tables, bookings, "19:30", "21:30")

	require.Len(t, free, 1)
	assert.Equal(t, 2, free[0].TableNumber)
}

func TestFreeTables_BoundaryTouchIsNotOverlap(t *testing.T) {
	tables := []*domain.Table{table(1, 4)}

	// Посадка заканчивается ровно в 19:00 - стол свободен с 19:00
	bookings := []*domain.Booking{assignedBooking(1, "17:00", "19:00")}
	free := FreeTables(tables, bookings, "19:00", "21:00")
	assert.Len(t, free, 1)

	// И наоборот: посадка с 19:00 не мешает интервалу до 19:00
	bookings = []*domain.Booking{assignedBooking(1, "19:00", "21:00")}
	free = FreeTables(tables, bookings, "17:00", "19:00")
	assert.Len(t, free, 1)
}

func TestFreeTables_InactiveAndUnassignedIgnored(t *testing.T) {
	tables := []*domain.Table{table(1, 4)}

	cancelled := assignedBooking(1, "19:00", "21:00")
	cancelled.Status = domain.StatusCancelled

	completed := assignedBooking(1, "19:00", "21:00")
	completed.Status = domain.StatusCompleted

	unassigned := assignedBooking(1, "19:00", "21:00")
	unassigned.TableNumber = nil

	free := FreeTables(tables, []*domain.Booking{cancelled, completed, unassigned}, "19:00", "21:00")
	assert.Len(t, free, 1)
}

func TestFreeTables_PreservesCandidateOrder(t *testing.T) {
	tables := []*domain.Table{table(3, 2), table(1, 4), table(2, 6)}

	free := FreeTables(tables, nil, "19:00", "21:00")

	require.Len(t, free, 3)
	assert.Equal(t, 3, free[0].TableNumber)
	assert.Equal(t, 1, free[1].TableNumber)
	assert.Equal(t, 2, free[2].TableNumber)
}

func TestFreeTables_DoesNotMutateInputs(t *testing.T) {
	tables := []*domain.Table{table(1, 4), table(2, 6)}
	bookings := []*domain.Booking{assignedBooking(1, "19:00", "20:30")}

	first := FreeTables(tables, bookings, "19:30", "21:30")
	second := FreeTables(tables, bookings, "19:30", "21:30")

	assert.Equal(t, first, second)
	assert.Len(t, tables, 2)
	assert.Len(t, bookings, 1)
}

func serviceForScenario() *Service {
	loc := &domain.Location{
		ID:                     1,
		ScheduleMode:           domain.ScheduleModeSimple,
		OpeningTime:            "10:00",
		ClosingTime:            "23:00",
		SlotIntervalMinutes:    30,
		ServiceDurationMinutes: 120,
		AllowWeekendBookings:   true,
		MaxAdvanceBookingDays:  30,
	}

	return NewService(
		&stubBookingRepo{bookings: []*domain.Booking{assignedBooking(1, "19:00", "20:30")}},
		&stubTableRepo{tables: []*domain.Table{table(1, 4), table(2, 6)}},
		&stubLocationRepo{location: loc},
		nopLogger{},
	)
}

func scenarioQuery(partySize int) Query {
	return Query{
		LocationID: 1,
		Date:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Checkin:    "19:30",
		PartySize:  partySize,
	}
}

// Два стола (на 4 и на 6), стол 1 занят с 19:00 до 20:30.
// Компания из четырех на 19:30 должна получить стол 2
func TestService_ResolveTable_PicksFreeTable(t *testing.T) {
	svc := serviceForScenario()

	resolved, err := svc.ResolveTable(context.Background(), scenarioQuery(4))

	require.NoError(t, err)
	assert.Equal(t, 2, resolved.TableNumber)
}

func TestService_ResolveTable_NoTableForLargeParty(t *testing.T) {
	svc := serviceForScenario()

	_, err := svc.ResolveTable(context.Background(), scenarioQuery(8))

	assert.ErrorIs(t, err, ErrNoTableAvailable)
}

func TestService_IsAvailable(t *testing.T) {
	svc := serviceForScenario()

	available, err := svc.IsAvailable(context.Background(), scenarioQuery(4))
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.IsAvailable(context.Background(), scenarioQuery(8))
	require.NoError(t, err)
	assert.False(t, available)
}

func TestService_AvailableTableCount(t *testing.T) {
	svc := serviceForScenario()

	// Проверка доступности ничего не меняет: повторные вызовы дают тот же ответ
	for i := 0; i < 3; i++ {
		count, err := svc.AvailableTableCount(context.Background(), scenarioQuery(2))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}
}

func TestService_IsAvailable_InvalidQuery(t *testing.T) {
	svc := serviceForScenario()

	_, err := svc.IsAvailable(context.Background(), Query{})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	q := scenarioQuery(4)
	q.Checkout = "19:00" // checkout раньше checkin
	_, err = svc.IsAvailable(context.Background(), q)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}
