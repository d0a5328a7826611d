package delete_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	"github.com/restopoint/TableReservationService/internal/service/tables"
)

const (
	msgInvalidTableID = "некорректный идентификатор стола"
	msgTableNotFound  = "стол не найден"
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

// Handle DELETE /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil || tableID <= 0 {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %s", vars["tableId"])
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	if err := h.tableService.RemoveTable(r.Context(), tableID); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed to delete table: table_id=%d, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted: table_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
