package confirm_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	confirmBooking "github.com/restopoint/TableReservationService/internal/usecase/confirm_booking"
	suggestSlots "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
	"github.com/restopoint/TableReservationService/pkg/types"
)

const (
	msgInvalidBookingID    = "некорректный идентификатор бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgBookingNotFound     = "бронирование не найдено"
	msgLocationNotFound    = "локация не найдена"
	msgCannotConfirm       = "бронирование нельзя подтвердить в текущем статусе"
	msgNoTableAvailable    = "нет свободного стола на время бронирования"
	msgTableUnavailable    = "запрошенный стол недоступен"
	msgConcurrencyConflict = "бронирование конфликтует с параллельным подтверждением, повторите запрос"
)

type Handler struct {
	useCase         ConfirmBookingUseCase
	suggestUseCase  SuggestSlotsUseCase
	bookingProvider BookingProvider
	logger          Logger
}

func NewHandler(
	useCase ConfirmBookingUseCase,
	suggestUseCase SuggestSlotsUseCase,
	bookingProvider BookingProvider,
	logger Logger,
) *Handler {
	return &Handler{
		useCase:         useCase,
		suggestUseCase:  suggestUseCase,
		bookingProvider: bookingProvider,
		logger:          logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/confirm - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Тело опционально: без него аллокатор выбирает стол сам
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		BookingID:            bookingID,
		RequestedTableNumber: req.TableNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrNoTableAvailable):
			h.logger.Warn("PATCH /bookings/{id}/confirm - No table available: booking_id=%d", bookingID)
			h.respondConflict(w, r, bookingID, msgNoTableAvailable)

		case errors.Is(err, confirmBooking.ErrTableUnavailable):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Requested table unavailable: booking_id=%d", bookingID)
			h.respondConflict(w, r, bookingID, msgTableUnavailable)

		case errors.Is(err, confirmBooking.ErrConcurrencyConflict):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Concurrency conflict: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrencyConflict)

		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmBooking.ErrLocationNotFound):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Location not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, confirmBooking.ErrCannotConfirm):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Cannot confirm: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotConfirm)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/confirm - Failed to confirm booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/confirm - Booking confirmed: booking_id=%d, table_number=%d",
		result.BookingID, result.AssignedTableNumber)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// respondConflict формирует 409 с подбором альтернативных слотов
// вокруг времени самого бронирования
func (h *Handler) respondConflict(w http.ResponseWriter, r *http.Request, bookingID int64, message string) {
	suggested := []string{}

	booking, err := h.bookingProvider.GetByID(r.Context(), bookingID)
	if err != nil {
		h.logger.Error("PATCH /bookings/{id}/confirm - Failed to load booking for suggestions: booking_id=%d, error=%v",
			bookingID, err)
	} else {
		resp, err := h.suggestUseCase.Execute(r.Context(), &suggestSlots.Request{
			LocationID:    booking.LocationID,
			Date:          booking.BookingDate,
			RequestedTime: types.TimeString(booking.CheckinTime),
			PartySize:     booking.GuestCount,
		})
		if err != nil {
			h.logger.Error("PATCH /bookings/{id}/confirm - Failed to suggest slots: booking_id=%d, error=%v",
				bookingID, err)
		} else {
			suggested = FromSuggestions(resp)
		}
	}

	handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
		Error:          message,
		SuggestedSlots: suggested,
	})
}
