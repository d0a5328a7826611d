package suggest_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	"github.com/restopoint/TableReservationService/internal/domain"
	suggestSlots "github.com/restopoint/TableReservationService/internal/usecase/suggest_slots"
	"github.com/restopoint/TableReservationService/pkg/types"
)

const (
	msgInvalidLocationID = "некорректный идентификатор локации"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime       = "некорректный формат времени, ожидается HH:MM"
	msgInvalidPartySize  = "некорректный размер компании"
	msgInvalidRadius     = "некорректный радиус поиска"
	msgLocationNotFound  = "локация не найдена"
)

type Handler struct {
	useCase SuggestSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/slot-suggestions?date&time&partySize&radius
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/{id}/slot-suggestions - Invalid location ID: %s", vars["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/slot-suggestions - Invalid date: %s", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	requestedTime, err := types.NewTimeStringFromString(r.URL.Query().Get("time"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/slot-suggestions - Invalid time: %s", r.URL.Query().Get("time"))
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	partySize, err := strconv.Atoi(r.URL.Query().Get("partySize"))
	if err != nil || partySize <= 0 {
		h.logger.Warn("GET /locations/{id}/slot-suggestions - Invalid party size: %s", r.URL.Query().Get("partySize"))
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	radius := 0
	if radiusParam := r.URL.Query().Get("radius"); radiusParam != "" {
		radius, err = strconv.Atoi(radiusParam)
		if err != nil || radius <= 0 {
			h.logger.Warn("GET /locations/{id}/slot-suggestions - Invalid radius: %s", radiusParam)
			handlers.RespondBadRequest(w, msgInvalidRadius)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &suggestSlots.Request{
		LocationID:    locationID,
		Date:          date,
		RequestedTime: requestedTime,
		PartySize:     partySize,
		RadiusMinutes: radius,
	})
	if err != nil {
		switch {
		case errors.Is(err, suggestSlots.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/slot-suggestions - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, suggestSlots.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/slot-suggestions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		default:
			h.logger.Error("GET /locations/{id}/slot-suggestions - Failed to suggest slots: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
