package get_booking

import (
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	LocationID    int64   `json:"locationId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	GuestCount    int     `json:"guestCount"`
	BookingDate   string  `json:"bookingDate"`
	CheckinTime   string  `json:"checkinTime"`
	CheckoutTime  string  `json:"checkoutTime"`
	Status        string  `json:"status"`
	TableNumber   *int    `json:"tableNumber,omitempty"`
	Source        string  `json:"source"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		LocationID:    b.LocationID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		GuestCount:    b.GuestCount,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		CheckinTime:   b.CheckinTime,
		CheckoutTime:  b.CheckoutTime,
		Status:        b.Status,
		TableNumber:   b.TableNumber,
		Source:        b.Source,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}
