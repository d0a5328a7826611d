package domain

import (
	"time"

	"github.com/restopoint/TableReservationService/pkg/types"
)

// ScheduleMode режим расписания локации
type ScheduleMode string

const (
	// ScheduleModeSimple одна рабочая смена, опционально разорванная обеденным перерывом
	ScheduleModeSimple ScheduleMode = "simple"
	// ScheduleModeAdvanced две независимые смены (утренняя и вечерняя)
	ScheduleModeAdvanced ScheduleMode = "advanced"
)

// ShiftWindow именованная рабочая смена [Start, End)
type ShiftWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Location represents a restaurant location with its working-hours
// configuration. Read-only input to the booking core: the location catalog
// owns it, defaults are applied once at load time by the repository.
type Location struct {
	ID   int64
	Name string

	ScheduleMode ScheduleMode

	// Simple mode
	OpeningTime types.TimeString
	ClosingTime types.TimeString

	LunchBreakEnabled bool
	LunchBreakStart   types.TimeString
	LunchBreakEnd     types.TimeString

	// Advanced mode
	MorningShift ShiftWindow
	EveningShift ShiftWindow

	SlotIntervalMinutes int
	BufferMinutes       int

	MinAdvanceBookingHours int
	MaxAdvanceBookingDays  int
	AllowWeekendBookings   bool

	// Даты закрытия, ключ в формате YYYY-MM-DD
	// Парсятся репозиторием из newline-delimited списка при загрузке
	SpecialClosedDates map[string]struct{}

	ServiceDurationMinutes int

	Timezone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosedOn returns true if the date is in the special closed dates list
func (l *Location) IsClosedOn(date time.Time) bool {
	if len(l.SpecialClosedDates) == 0 {
		return false
	}
	_, closed := l.SpecialClosedDates[date.Format(DateFormat)]
	return closed
}

// TimeLocation returns the location's time zone, falling back to UTC when
// the configured zone is missing or unknown
func (l *Location) TimeLocation() *time.Location {
	if l.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlotStepMinutes шаг сетки слотов: интервал плюс буфер между посадками
func (l *Location) SlotStepMinutes() int {
	return l.SlotIntervalMinutes + l.BufferMinutes
}
