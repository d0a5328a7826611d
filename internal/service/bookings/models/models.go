package models

import (
	"fmt"
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// BookingResponse модель бронирования для отдачи наружу
type BookingResponse struct {
	ID            int64
	LocationID    int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	GuestCount    int
	BookingDate   time.Time
	CheckinTime   string
	CheckoutTime  string
	Status        string
	TableNumber   *int
	Source        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// GetLocationBookingsRequest запрос списка бронирований локации
type GetLocationBookingsRequest struct {
	LocationID      int64
	Date            *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *GetLocationBookingsRequest) ToDomainFilter() (domain.LocationBookingsFilter, error) {
	filter := domain.LocationBookingsFilter{
		LocationID:      r.LocationID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.LocationBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// FromDomainBooking конвертирует domain-бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		LocationID:    b.LocationID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		GuestCount:    b.GuestCount,
		BookingDate:   b.BookingDate,
		CheckinTime:   b.CheckinTime.String(),
		CheckoutTime:  b.CheckoutTime.String(),
		Status:        string(b.Status),
		TableNumber:   b.TableNumber,
		Source:        string(b.Source),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain-бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}
