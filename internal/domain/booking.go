package domain

import (
	"time"

	"github.com/restopoint/TableReservationService/pkg/types"
)

// BookingStatus represents the status of a table reservation
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingSource откуда пришло бронирование
type BookingSource string

const (
	SourcePublic  BookingSource = "public"
	SourceManager BookingSource = "manager"
	SourceAdmin   BookingSource = "admin"
)

// Booking represents a table reservation in the system
//
// TableNumber is nullable: a booking is created unassigned and is bound to
// physical inventory only when a table is allocated. Until then it does not
// participate in the overlap invariant.
type Booking struct {
	ID         int64
	LocationID int64

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	GuestCount   int
	BookingDate  time.Time
	CheckinTime  types.TimeString
	CheckoutTime types.TimeString
	Status       BookingStatus
	TableNumber  *int
	Source       BookingSource

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its table for overlap checks
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsAssigned returns true if the booking is bound to a physical table
func (b *Booking) IsAssigned() bool {
	return b.TableNumber != nil
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can go through table allocation
// Подтверждать можно и уже подтвержденное бронирование - это перевыделение
// стола при редактировании даты/времени
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps reports whether the booking's [check-in, check-out) interval
// intersects the given interval. Half-open semantics: touching endpoints do
// not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.CheckinTime.IsBefore(end) && b.CheckoutTime.IsAfter(start)
}

// LocationBookingsFilter фильтр для выборки бронирований локации
type LocationBookingsFilter struct {
	LocationID       int64      // Обязательный параметр
	Date             *time.Time // Бронирования на конкретную дату (опционально)
	Status           *BookingStatus
	OnlyAssigned     bool   // Только бронирования с назначенным столом
	ExcludeBookingID *int64 // Исключить бронирование (перепроверка при редактировании)
	IncludeInactive  bool   // Включать отмененные и завершенные
}
