package update_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	"github.com/restopoint/TableReservationService/internal/service/tables"
)

const (
	msgInvalidTableID     = "некорректный идентификатор стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTableNotFound      = "стол не найден"
)

// UpdateTableRequest HTTP request model
type UpdateTableRequest struct {
	IsAvailable *bool `json:"isAvailable"`
}

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

// Handle PATCH /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil || tableID <= 0 {
		h.logger.Warn("PATCH /tables/{id} - Invalid table ID: %s", vars["tableId"])
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.IsAvailable == nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.tableService.SetTableActive(r.Context(), tableID, *req.IsAvailable); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PATCH /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("PATCH /tables/{id} - Failed to update table: table_id=%d, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tables/{id} - Table updated: table_id=%d, is_available=%t", tableID, *req.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
