package get_location_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	locationRepo "github.com/restopoint/TableReservationService/internal/infra/storage/location"
)

const (
	msgInvalidLocationID = "некорректный идентификатор локации"
	msgLocationNotFound  = "локация не найдена"
)

type Handler struct {
	locationRepo LocationRepository
	logger       Logger
}

func NewHandler(locationRepo LocationRepository, logger Logger) *Handler {
	return &Handler{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/{id}/config - Invalid location ID: %s", vars["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	location, err := h.locationRepo.GetByID(r.Context(), locationID)
	if err != nil {
		switch {
		case errors.Is(err, locationRepo.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/config - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /locations/{id}/config - Failed to get location: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainLocation(location))
}
