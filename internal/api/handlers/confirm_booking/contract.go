package confirm_booking

import (
	"context"

	"github.com/restopoint/TableReservationService/internal/service/bookings/models"
	confirmBooking "github.com/restopoint/TableReservationService/internal/usecase/confirm_booking"
	suggestSlots "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error)
}

// SuggestSlotsUseCase подбирает альтернативы для ответа 409
type SuggestSlotsUseCase interface {
	Execute(ctx context.Context, req *suggestSlots.Request) (*suggestSlots.Response, error)
}

// BookingProvider отдает бронирование для подбора альтернатив:
// при отказе аллокатора параметры слота берутся из самого бронирования
type BookingProvider interface {
	GetByID(ctx context.Context, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
