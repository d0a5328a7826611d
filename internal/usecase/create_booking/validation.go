package create_booking

import (
	"fmt"
	"strings"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Границы длительности и размера компании проверяются здесь, до резолвера:
// резолвер доступности предполагает корректный интервал
func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.GuestCount < domain.MinGuestCount || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guest count must be between %d and %d",
			ErrInvalidInput, domain.MinGuestCount, domain.MaxGuestCount)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.CheckinTime.IsZero() {
		return fmt.Errorf("%w: checkin time is required", ErrInvalidInput)
	}
	if err := req.CheckinTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkin time: %v", ErrInvalidInput, err)
	}

	if !req.CheckoutTime.IsZero() {
		if err := req.CheckoutTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid checkout time: %v", ErrInvalidInput, err)
		}

		duration, err := req.CheckinTime.MinutesBetween(req.CheckoutTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if duration < domain.MinServiceDurationMinutes || duration > domain.MaxServiceDurationMinutes {
			return fmt.Errorf("%w: service duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if req.Source != "" {
		switch domain.BookingSource(req.Source) {
		case domain.SourcePublic, domain.SourceManager, domain.SourceAdmin:
		default:
			return fmt.Errorf("%w: unknown booking source %q", ErrInvalidInput, req.Source)
		}
	}

	return nil
}
