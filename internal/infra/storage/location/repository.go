package location

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/pkg/dbmetrics"
	"github.com/restopoint/TableReservationService/pkg/psqlbuilder"
)

// DBExecutor общий интерфейс исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий каталога локаций
// Для ядра бронирования каталог read-only: настройки загружаются целиком,
// значения по умолчанию применяются один раз здесь, а не по месту использования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория локаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID загружает локацию с настройками рабочих часов
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"schedule_mode",
		"opening_time",
		"closing_time",
		"lunch_break_enabled",
		"lunch_break_start",
		"lunch_break_end",
		"morning_shift_start",
		"morning_shift_end",
		"evening_shift_start",
		"evening_shift_end",
		"slot_interval_minutes",
		"buffer_minutes",
		"min_advance_booking_hours",
		"max_advance_booking_days",
		"allow_weekend_bookings",
		"special_closed_dates",
		"service_duration_minutes",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var loc domain.Location
	var scheduleMode sql.NullString
	var closedDatesRaw sql.NullString
	var timezone sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&loc.ID,
		&loc.Name,
		&scheduleMode,
		&loc.OpeningTime,
		&loc.ClosingTime,
		&loc.LunchBreakEnabled,
		&loc.LunchBreakStart,
		&loc.LunchBreakEnd,
		&loc.MorningShift.Start,
		&loc.MorningShift.End,
		&loc.EveningShift.Start,
		&loc.EveningShift.End,
		&loc.SlotIntervalMinutes,
		&loc.BufferMinutes,
		&loc.MinAdvanceBookingHours,
		&loc.MaxAdvanceBookingDays,
		&loc.AllowWeekendBookings,
		&closedDatesRaw,
		&loc.ServiceDurationMinutes,
		&timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan location: %v", ErrScanRow, err)
	}

	loc.ScheduleMode = domain.ScheduleMode(scheduleMode.String)
	loc.Timezone = timezone.String
	loc.SpecialClosedDates = parseClosedDates(closedDatesRaw.String)
	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	applyDefaults(&loc)

	return &loc, nil
}

// applyDefaults применяет значения по умолчанию к незаполненным настройкам
// Делается один раз при загрузке, чтобы в ядре не было разбросанных проверок
func applyDefaults(loc *domain.Location) {
	if loc.ScheduleMode != domain.ScheduleModeAdvanced {
		loc.ScheduleMode = domain.ScheduleModeSimple
	}
	if loc.SlotIntervalMinutes <= 0 {
		loc.SlotIntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if loc.BufferMinutes < 0 {
		loc.BufferMinutes = domain.DefaultBufferMinutes
	}
	if loc.ServiceDurationMinutes <= 0 {
		loc.ServiceDurationMinutes = domain.DefaultServiceDurationMinutes
	}
	if loc.MinAdvanceBookingHours < 0 {
		loc.MinAdvanceBookingHours = domain.DefaultMinAdvanceBookingHours
	}
	if loc.MaxAdvanceBookingDays <= 0 {
		loc.MaxAdvanceBookingDays = domain.DefaultMaxAdvanceBookingDays
	}
	if loc.Timezone == "" {
		loc.Timezone = domain.DefaultTimezone
	}
}

// parseClosedDates разбирает newline-delimited список дат закрытия в множество
// Некорректные строки молча пропускаются
func parseClosedDates(raw string) map[string]struct{} {
	dates := make(map[string]struct{})
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parsed, err := time.Parse(domain.DateFormat, line)
		if err != nil {
			continue
		}
		dates[parsed.Format(domain.DateFormat)] = struct{}{}
	}
	return dates
}
