package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopoint/TableReservationService/internal/domain"
	bookingRepo "github.com/restopoint/TableReservationService/internal/infra/storage/booking"
	"github.com/restopoint/TableReservationService/internal/integrations/crmservice"
	"github.com/restopoint/TableReservationService/internal/integrations/mailservice"
	"github.com/restopoint/TableReservationService/pkg/ptr"
	"github.com/restopoint/TableReservationService/pkg/simpletxmanager"
	"github.com/restopoint/TableReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeBookingRepo хранит бронирования в памяти
type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	assigned map[int64]int
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m, assigned: make(map[int64]int)}
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
		if filter.ExcludeBookingID != nil && b.ID == *filter.ExcludeBookingID {
			continue
		}
		if filter.OnlyAssigned && !b.IsAssigned() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) AssignTable(ctx context.Context, id int64, tableNumber int) error {
	f.assigned[id] = tableNumber
	b := f.bookings[id]
	b.TableNumber = ptr.Ptr(tableNumber)
	b.Status = domain.StatusConfirmed
	return nil
}

// fakeTableRepo отдает столы в порядке аллокации (вместимость, номер)
type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) ListActiveWithCapacity(ctx context.Context, locationID int64, minCapacity int) ([]*domain.Table, error) {
	result := make([]*domain.Table, 0, len(f.tables))
	for _, t := range f.tables {
		if t.LocationID == locationID && t.IsAvailable && t.Capacity >= minCapacity {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTableRepo) GetByNumber(ctx context.Context, locationID int64, tableNumber int) (*domain.Table, error) {
	for _, t := range f.tables {
		if t.LocationID == locationID && t.TableNumber == tableNumber {
			return t, nil
		}
	}
	return nil, errors.New("table not found")
}

type fakeLocationRepo struct {
	location *domain.Location
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return f.location, nil
}

// passTxManager выполняет fn без настоящей транзакции; первые failures
// вызовов завершаются конфликтом сериализации
type passTxManager struct {
	failures int
	calls    int
}

func (m *passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.calls <= m.failures {
		return simpletxmanager.ErrSerializationFailure
	}
	return fn(ctx)
}

type nopCRM struct{}

func (nopCRM) SyncGuestActivity(ctx context.Context, event *crmservice.GuestActivityEvent) error {
	return nil
}

type nopMail struct{}

func (nopMail) SendBookingConfirmation(ctx context.Context, msg *mailservice.ConfirmationMessage) error {
	return nil
}

func pendingBooking(id int64, guests int, checkin, checkout types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		LocationID:   1,
		GuestCount:   guests,
		BookingDate:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckinTime:  checkin,
		CheckoutTime: checkout,
		Status:       domain.StatusPending,
	}
}

func confirmedBooking(id int64, tableNumber int, checkin, checkout types.TimeString) *domain.Booking {
	b := pendingBooking(id, 2, checkin, checkout)
	b.Status = domain.StatusConfirmed
	b.TableNumber = ptr.Ptr(tableNumber)
	return b
}

// Столы заранее в порядке аллокации, как их отдает хранилище
func inventory() *fakeTableRepo {
	return &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, LocationID: 1, TableNumber: 3, Capacity: 2, IsAvailable: true},
		{ID: 2, LocationID: 1, TableNumber: 1, Capacity: 4, IsAvailable: true},
		{ID: 3, LocationID: 1, TableNumber: 2, Capacity: 6, IsAvailable: true},
	}}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, tableRepo *fakeTableRepo, txMgr TransactionManager) *UseCase {
	loc := &domain.Location{ID: 1, ServiceDurationMinutes: 120}
	return NewUseCase(bookingRepo, tableRepo, &fakeLocationRepo{location: loc}, txMgr, nopCRM{}, nopMail{}, nopLogger{})
}

func TestExecute_PicksSmallestSufficientTable(t *testing.T) {
	booking := pendingBooking(10, 3, "19:00", "21:00")
	repo := newFakeBookingRepo(booking)
	uc := newTestUseCase(repo, inventory(), &passTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10})

	require.NoError(t, err)
	// Стол на 2 мал, из достаточных наименьший - стол 1 (на 4)
	assert.Equal(t, 1, resp.AssignedTableNumber)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 1, repo.assigned[10])
}

func TestExecute_SkipsOccupiedTable(t *testing.T) {
	booking := pendingBooking(10, 3, "19:30", "21:30")
	occupying := confirmedBooking(20, 1, "19:00", "20:30")
	repo := newFakeBookingRepo(booking, occupying)
	uc := newTestUseCase(repo, inventory(), &passTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.AssignedTableNumber)
}

func TestExecute_NoTableAvailable(t *testing.T) {
	booking := pendingBooking(10, 8, "19:00", "21:00")
	repo := newFakeBookingRepo(booking)
	uc := newTestUseCase(repo, inventory(), &passTxManager{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10})

	assert.ErrorIs(t, err, ErrNoTableAvailable)
	assert.Empty(t, repo.assigned)
}

func TestExecute_DefaultDurationFromLocation(t *testing.T) {
	// Без явного checkout интервал выводится из длительности посадки (120 минут)
	booking := pendingBooking(10, 2, "19:00", "")
	occupying := confirmedBooking(20, 3, "20:30", "22:00")
	repo := newFakeBookingRepo(booking, occupying)
	uc := newTestUseCase(repo, inventory(), &passTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("21:00"), resp.CheckoutTime)
	// Интервал 19:00-21:00 пересекается с 20:30-22:00 на столе 3
	assert.NotEqual(t, 3, resp.AssignedTableNumber)
}

func TestExecute_RequestedTable(t *testing.T) {
	t.Run("valid table honored", func(t *testing.T) {
		booking := pendingBooking(10, 3, "19:00", "21:00")
		repo := newFakeBookingRepo(booking)
		uc := newTestUseCase(repo, inventory(), &passTxManager{})

		resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, RequestedTableNumber: ptr.Ptr(2)})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.AssignedTableNumber)
	})

	t.Run("unknown table", func(t *testing.T) {
		booking := pendingBooking(10, 3, "19:00", "21:00")
		uc := newTestUseCase(newFakeBookingRepo(booking), inventory(), &passTxManager{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, RequestedTableNumber: ptr.Ptr(99)})

		assert.ErrorIs(t, err, ErrTableUnavailable)
	})

	t.Run("table too small", func(t *testing.T) {
		booking := pendingBooking(10, 5, "19:00", "21:00")
		uc := newTestUseCase(newFakeBookingRepo(booking), inventory(), &passTxManager{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, RequestedTableNumber: ptr.Ptr(1)})

		assert.ErrorIs(t, err, ErrTableUnavailable)
	})

	t.Run("table occupied", func(t *testing.T) {
		booking := pendingBooking(10, 3, "19:30", "21:30")
		occupying := confirmedBooking(20, 1, "19:00", "20:30")
		uc := newTestUseCase(newFakeBookingRepo(booking, occupying), inventory(), &passTxManager{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, RequestedTableNumber: ptr.Ptr(1)})

		assert.ErrorIs(t, err, ErrTableUnavailable)
	})
}

func TestExecute_TerminalStatusRejected(t *testing.T) {
	booking := pendingBooking(10, 2, "19:00", "21:00")
	booking.Status = domain.StatusCancelled
	uc := newTestUseCase(newFakeBookingRepo(booking), inventory(), &passTxManager{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10})

	assert.ErrorIs(t, err, ErrCannotConfirm)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), inventory(), &passTxManager{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 404})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_SerializationConflictRetriesOnce(t *testing.T) {
	booking := pendingBooking(10, 2, "19:00", "21:00")
	repo := newFakeBookingRepo(booking)
	txMgr := &passTxManager{failures: 1}
	uc := newTestUseCase(repo, inventory(), txMgr)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, txMgr.calls)
	assert.Equal(t, 3, resp.AssignedTableNumber)
}

func TestExecute_PersistentConflictSurfaces(t *testing.T) {
	booking := pendingBooking(10, 2, "19:00", "21:00")
	txMgr := &passTxManager{failures: 2}
	uc := newTestUseCase(newFakeBookingRepo(booking), inventory(), txMgr)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10})

	assert.ErrorIs(t, err, ErrConcurrencyConflict)
	assert.Equal(t, 2, txMgr.calls)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), inventory(), &passTxManager{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, RequestedTableNumber: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Случайные пары подтвержденных интервалов на одном столе: после каждой
// успешной аллокации назначения на столе не пересекаются
func TestExecute_AssignedIntervalsNeverOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 50; iter++ {
		// Существующая посадка и кандидат в пределах 10:00-22:00
		existingStart := 600 + rng.Intn(10)*60
		existingEnd := existingStart + 60 + rng.Intn(3)*30
		candidateStart := 600 + rng.Intn(10)*60
		candidateEnd := candidateStart + 60 + rng.Intn(3)*30

		toTS := func(minutes int) types.TimeString {
			return types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
		}

		existing := confirmedBooking(20, 5, toTS(existingStart), toTS(existingEnd))
		candidate := pendingBooking(10, 2, toTS(candidateStart), toTS(candidateEnd))

		singleTable := &fakeTableRepo{tables: []*domain.Table{
			{ID: 1, LocationID: 1, TableNumber: 5, Capacity: 4, IsAvailable: true},
		}}
		uc := newTestUseCase(newFakeBookingRepo(candidate, existing), singleTable, &passTxManager{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10})

		overlaps := existingStart < candidateEnd && existingEnd > candidateStart
		if overlaps {
			assert.ErrorIs(t, err, ErrNoTableAvailable,
				"intervals %d-%d and %d-%d overlap, allocation must fail",
				existingStart, existingEnd, candidateStart, candidateEnd)
		} else {
			assert.NoError(t, err,
				"intervals %d-%d and %d-%d do not overlap, allocation must succeed",
				existingStart, existingEnd, candidateStart, candidateEnd)
		}
	}
}
