package create_booking

import (
	"errors"
	"net/http"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	createBooking "github.com/restopoint/TableReservationService/internal/usecase/create_booking"
	suggestSlots "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgLocationNotFound   = "локация не найдена"
	msgDateNotBookable    = "выбранная дата недоступна для бронирования"
	msgInvalidTimeSlot    = "время не попадает в сетку слотов"
	msgSlotNotAvailable   = "нет свободного стола на выбранное время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase        CreateBookingUseCase
	suggestUseCase SuggestSlotsUseCase
	logger         Logger
}

func NewHandler(useCase CreateBookingUseCase, suggestUseCase SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		suggestUseCase: suggestUseCase,
		logger:         logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: location_id=%d, time=%s",
				req.LocationID, req.CheckinTime)
			h.respondConflict(w, r, useCaseReq)

		case errors.Is(err, createBooking.ErrLocationNotFound):
			h.logger.Warn("POST /bookings - Location not found: location_id=%d", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Warn("POST /bookings - Date not bookable: location_id=%d, date=%s",
				req.LocationID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: location_id=%d, time=%s",
				req.LocationID, req.CheckinTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: location_id=%d, error=%v",
				req.LocationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, location_id=%d",
		result.ID, req.LocationID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// respondConflict формирует 409 с подбором альтернативных слотов
// Сбой подбора не меняет статус ответа - отдаем 409 с пустым списком
func (h *Handler) respondConflict(w http.ResponseWriter, r *http.Request, req *createBooking.Request) {
	suggested := []string{}

	resp, err := h.suggestUseCase.Execute(r.Context(), &suggestSlots.Request{
		LocationID:    req.LocationID,
		Date:          req.Date,
		RequestedTime: req.CheckinTime,
		PartySize:     req.GuestCount,
	})
	if err != nil {
		h.logger.Error("POST /bookings - Failed to suggest slots: location_id=%d, error=%v",
			req.LocationID, err)
	} else {
		suggested = FromSuggestions(resp)
	}

	handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
		Error:          msgSlotNotAvailable,
		SuggestedSlots: suggested,
	})
}
