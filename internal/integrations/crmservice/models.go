package crmservice

import (
	"github.com/restopoint/TableReservationService/internal/domain"
)

// ActivityType тип события активности гостя
type ActivityType string

const (
	ActivityBookingCreated   ActivityType = "booking_created"
	ActivityBookingConfirmed ActivityType = "booking_confirmed"
	ActivityBookingCancelled ActivityType = "booking_cancelled"
	ActivityBookingCompleted ActivityType = "booking_completed"
)

// GuestActivityEvent событие для синхронизации профиля гостя в CRM
type GuestActivityEvent struct {
	LocationID    int64        `json:"location_id"`
	BookingID     int64        `json:"booking_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	CustomerEmail *string      `json:"customer_email,omitempty"`
	GuestCount    int          `json:"guest_count"`
	BookingDate   string       `json:"booking_date"`
	CheckinTime   string       `json:"checkin_time"`
	Activity      ActivityType `json:"activity"`
}

// NewGuestActivityEvent собирает событие из бронирования
func NewGuestActivityEvent(b *domain.Booking, activity ActivityType) *GuestActivityEvent {
	return &GuestActivityEvent{
		LocationID:    b.LocationID,
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		GuestCount:    b.GuestCount,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		CheckinTime:   b.CheckinTime.String(),
		Activity:      activity,
	}
}

// ErrorResponse модель ошибки от CRM
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
