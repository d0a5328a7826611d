package confirm_booking

import (
	"github.com/restopoint/TableReservationService/internal/domain"
	confirmBooking "github.com/restopoint/TableReservationService/internal/usecase/confirm_booking"
	suggestSlots "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	// Явно выбранный стол; отсутствие = автоматический подбор
	TableNumber *int `json:"tableNumber,omitempty"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	BookingID           int64  `json:"bookingId"`
	LocationID          int64  `json:"locationId"`
	AssignedTableNumber int    `json:"assignedTableNumber"`
	GuestCount          int    `json:"guestCount"`
	BookingDate         string `json:"bookingDate"`
	CheckinTime         string `json:"checkinTime"`
	CheckoutTime        string `json:"checkoutTime"`
	Status              string `json:"status"`
}

// ConflictResponse тело ответа 409: отказ всегда сопровождается альтернативами
type ConflictResponse struct {
	Error          string   `json:"error"`
	SuggestedSlots []string `json:"suggestedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		BookingID:           resp.BookingID,
		LocationID:          resp.LocationID,
		AssignedTableNumber: resp.AssignedTableNumber,
		GuestCount:          resp.GuestCount,
		BookingDate:         resp.BookingDate.Format(domain.DateFormat),
		CheckinTime:         resp.CheckinTime.String(),
		CheckoutTime:        resp.CheckoutTime.String(),
		Status:              resp.Status,
	}
}

// FromSuggestions конвертирует подобранные слоты в список "HH:MM"
func FromSuggestions(resp *suggestSlots.Response) []string {
	slots := make([]string, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		slots = append(slots, s.StartTime.String())
	}
	return slots
}
