package create_booking

import (
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
	createBooking "github.com/restopoint/TableReservationService/internal/usecase/create_booking"
	suggestSlots "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
	"github.com/restopoint/TableReservationService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	LocationID    int64   `json:"locationId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	GuestCount    int     `json:"guestCount"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	CheckinTime   string  `json:"checkinTime"` // "19:00"
	CheckoutTime  *string `json:"checkoutTime,omitempty"`
	Source        string  `json:"source,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

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
	Source        string  `json:"source"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ConflictResponse тело ответа 409: отказ всегда сопровождается альтернативами
type ConflictResponse struct {
	Error          string   `json:"error"`
	SuggestedSlots []string `json:"suggestedSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	checkinTime, err := types.NewTimeStringFromString(r.CheckinTime)
	if err != nil {
		return nil, err
	}

	var checkoutTime types.TimeString
	if r.CheckoutTime != nil {
		checkoutTime, err = types.NewTimeStringFromString(*r.CheckoutTime)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		LocationID:    r.LocationID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		GuestCount:    r.GuestCount,
		Date:          bookingDate,
		CheckinTime:   checkinTime,
		CheckoutTime:  checkoutTime,
		Source:        r.Source,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		LocationID:    resp.LocationID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		GuestCount:    resp.GuestCount,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		CheckinTime:   resp.CheckinTime.String(),
		CheckoutTime:  resp.CheckoutTime.String(),
		Status:        resp.Status,
		Source:        resp.Source,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
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
