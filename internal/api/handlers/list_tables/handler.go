package list_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	"github.com/restopoint/TableReservationService/internal/service/tables"
)

const (
	msgInvalidLocationID = "некорректный идентификатор локации"
)

type Handler struct {
	tableService TableService
	logger       Logger
}

func NewHandler(tableService TableService, logger Logger) *Handler {
	return &Handler{
		tableService: tableService,
		logger:       logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/{id}/tables - Invalid location ID: %s", vars["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	result, err := h.tableService.ListTables(r.Context(), locationID)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocationID)

		default:
			h.logger.Error("GET /locations/{id}/tables - Failed to list tables: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainTables(result))
}
