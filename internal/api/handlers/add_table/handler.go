package add_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	"github.com/restopoint/TableReservationService/internal/service/tables"
)

const (
	msgInvalidLocationID  = "некорректный идентификатор локации"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDuplicateTable     = "стол с таким номером уже существует в локации"
	msgInvalidCapacity    = "некорректная вместимость стола"
	msgInvalidInput       = "некорректные данные стола"
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

// Handle POST /api/v1/locations/{locationId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("POST /locations/{id}/tables - Invalid location ID: %s", vars["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req AddTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.tableService.AddTable(r.Context(), locationID, req.TableNumber, req.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrDuplicateTable):
			h.logger.Warn("POST /locations/{id}/tables - Duplicate table: location_id=%d, table_number=%d",
				locationID, req.TableNumber)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateTable)

		case errors.Is(err, tables.ErrInvalidCapacity):
			h.logger.Warn("POST /locations/{id}/tables - Invalid capacity: location_id=%d, capacity=%d",
				locationID, req.Capacity)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /locations/{id}/tables - Failed to add table: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations/{id}/tables - Table created: table_id=%d, location_id=%d, table_number=%d",
		table.ID, locationID, table.TableNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainTable(table))
}
