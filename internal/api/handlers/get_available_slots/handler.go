package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	"github.com/restopoint/TableReservationService/internal/domain"
	getAvailableSlots "github.com/restopoint/TableReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidLocationID = "некорректный идентификатор локации"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize  = "некорректный размер компании"
	msgLocationNotFound  = "локация не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/available-slots?date&partySize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/{id}/available-slots - Invalid location ID: %s", vars["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/available-slots - Invalid date: %s", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize := 0
	if partyParam := r.URL.Query().Get("partySize"); partyParam != "" {
		partySize, err = strconv.Atoi(partyParam)
		if err != nil || partySize <= 0 {
			h.logger.Warn("GET /locations/{id}/available-slots - Invalid party size: %s", partyParam)
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		LocationID: locationID,
		Date:       date,
		PartySize:  partySize,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/available-slots - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		default:
			h.logger.Error("GET /locations/{id}/available-slots - Failed to get slots: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
