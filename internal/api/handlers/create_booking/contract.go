package create_booking

import (
	"context"

	createBooking "github.com/restopoint/TableReservationService/internal/usecase/create_booking"
	suggestSlots "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// SuggestSlotsUseCase подбирает альтернативы для ответа 409
type SuggestSlotsUseCase interface {
	Execute(ctx context.Context, req *suggestSlots.Request) (*suggestSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
