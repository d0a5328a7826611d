package get_location_bookings

import (
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/internal/service/bookings/models"
)

// BookingItem элемент списка бронирований
type BookingItem struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	GuestCount    int     `json:"guestCount"`
	BookingDate   string  `json:"bookingDate"`
	CheckinTime   string  `json:"checkinTime"`
	CheckoutTime  string  `json:"checkoutTime"`
	Status        string  `json:"status"`
	TableNumber   *int    `json:"tableNumber,omitempty"`
	Source        string  `json:"source"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []*BookingItem `json:"bookings"`
	Total    int            `json:"total"`
}

// FromServiceResponse конвертирует список сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	items := make([]*BookingItem, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		items = append(items, &BookingItem{
			ID:            b.ID,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			GuestCount:    b.GuestCount,
			BookingDate:   b.BookingDate.Format(domain.DateFormat),
			CheckinTime:   b.CheckinTime,
			CheckoutTime:  b.CheckoutTime,
			Status:        b.Status,
			TableNumber:   b.TableNumber,
			Source:        b.Source,
			Notes:         b.Notes,
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		})
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    resp.Total,
	}
}
