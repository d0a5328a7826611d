package suggest_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/internal/service/availability"
	"github.com/restopoint/TableReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeLocationRepo struct {
	location *domain.Location
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return f.location, nil
}

// fakeResolver отвечает "доступно" для всех слотов, кроме занятых
type fakeResolver struct {
	occupied map[types.TimeString]bool
	queried  []types.TimeString
}

func (f *fakeResolver) IsAvailable(ctx context.Context, q availability.Query) (bool, error) {
	f.queried = append(f.queried, q.Checkin)
	return !f.occupied[q.Checkin], nil
}

func testLocation() *domain.Location {
	return &domain.Location{
		ID:                  1,
		ScheduleMode:        domain.ScheduleModeSimple,
		OpeningTime:         "10:00",
		ClosingTime:         "23:00",
		SlotIntervalMinutes: 30,
	}
}

func testRequest(requested types.TimeString, radius int) *Request {
	return &Request{
		LocationID:    1,
		Date:          time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		RequestedTime: requested,
		PartySize:     4,
		RadiusMinutes: radius,
	}
}

func suggestionTimes(resp *Response) []types.TimeString {
	result := make([]types.TimeString, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		result = append(result, s.StartTime)
	}
	return result
}

// Запрошенное время 19:00 занято, соседние 18:30 и 19:30 свободны:
// оба попадают в радиус 30 минут
func TestExecute_NeighboringSlots(t *testing.T) {
	resolver := &fakeResolver{occupied: map[types.TimeString]bool{"19:00": true}}
	uc := NewUseCase(&fakeLocationRepo{location: testLocation()}, resolver, 120, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest("19:00", 30))

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"18:30", "19:30"}, suggestionTimes(resp))
}

func TestExecute_RequestedTimeNeverSuggested(t *testing.T) {
	// Даже если запрошенный слот числится свободным, подбор его не предлагает
	resolver := &fakeResolver{occupied: map[types.TimeString]bool{}}
	uc := NewUseCase(&fakeLocationRepo{location: testLocation()}, resolver, 120, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest("19:00", 60))

	require.NoError(t, err)
	assert.NotContains(t, suggestionTimes(resp), types.TimeString("19:00"))
	for _, q := range resolver.queried {
		assert.NotEqual(t, types.TimeString("19:00"), q)
	}
}

func TestExecute_SortedByProximityTiesEarlierFirst(t *testing.T) {
	resolver := &fakeResolver{occupied: map[types.TimeString]bool{}}
	uc := NewUseCase(&fakeLocationRepo{location: testLocation()}, resolver, 120, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest("19:00", 60))

	require.NoError(t, err)
	// При равном расстоянии более ранний слот идет первым
	expected := []types.TimeString{"18:30", "19:30", "18:00", "20:00"}
	assert.Equal(t, expected, suggestionTimes(resp))

	for _, s := range resp.Suggestions {
		assert.Greater(t, s.DistanceMinutes, 0)
		assert.LessOrEqual(t, s.DistanceMinutes, 60)
	}
}

func TestExecute_EmptyWhenNothingFree(t *testing.T) {
	resolver := &fakeResolver{occupied: map[types.TimeString]bool{
		"18:30": true, "19:30": true,
	}}
	uc := NewUseCase(&fakeLocationRepo{location: testLocation()}, resolver, 120, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest("19:00", 30))

	require.NoError(t, err)
	assert.Empty(t, resp.Suggestions)
}

func TestExecute_DefaultRadiusFromConfig(t *testing.T) {
	resolver := &fakeResolver{occupied: map[types.TimeString]bool{}}
	uc := NewUseCase(&fakeLocationRepo{location: testLocation()}, resolver, 60, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest("19:00", 0))

	require.NoError(t, err)
	for _, s := range resp.Suggestions {
		assert.LessOrEqual(t, s.DistanceMinutes, 60)
	}
	assert.Len(t, resp.Suggestions, 4)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeLocationRepo{location: testLocation()}, &fakeResolver{}, 120, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest("not-a-time", 30))
	assert.ErrorIs(t, err, ErrInvalidInput)

	req := testRequest("19:00", 30)
	req.PartySize = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
