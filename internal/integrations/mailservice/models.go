package mailservice

import (
	"github.com/restopoint/TableReservationService/internal/domain"
)

// ConfirmationMessage письмо-подтверждение бронирования
type ConfirmationMessage struct {
	BookingID     int64   `json:"booking_id"`
	LocationID    int64   `json:"location_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	GuestCount    int     `json:"guest_count"`
	BookingDate   string  `json:"booking_date"`
	CheckinTime   string  `json:"checkin_time"`
	CheckoutTime  string  `json:"checkout_time"`
	TableNumber   int     `json:"table_number"`
}

// NewConfirmationMessage собирает письмо из подтвержденного бронирования
func NewConfirmationMessage(b *domain.Booking, tableNumber int) *ConfirmationMessage {
	return &ConfirmationMessage{
		BookingID:     b.ID,
		LocationID:    b.LocationID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		GuestCount:    b.GuestCount,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		CheckinTime:   b.CheckinTime.String(),
		CheckoutTime:  b.CheckoutTime.String(),
		TableNumber:   tableNumber,
	}
}
