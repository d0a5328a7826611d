package get_location_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/restopoint/TableReservationService/internal/api/handlers"
	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/internal/service/bookings"
	"github.com/restopoint/TableReservationService/internal/service/bookings/models"
	"github.com/restopoint/TableReservationService/pkg/ptr"
)

const (
	msgInvalidLocationID = "некорректный идентификатор локации"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus     = "некорректный статус бронирования"
)

type Handler struct {
	bookingService BookingService
	logger         Logger
}

func NewHandler(bookingService BookingService, logger Logger) *Handler {
	return &Handler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/bookings?date&status&includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/{id}/bookings - Invalid location ID: %s", vars["locationId"])
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	req := &models.GetLocationBookingsRequest{
		LocationID:      locationID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := time.Parse(domain.DateFormat, dateParam)
		if err != nil {
			h.logger.Warn("GET /locations/{id}/bookings - Invalid date: %s", dateParam)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		req.Status = ptr.Ptr(statusParam)
	}

	result, err := h.bookingService.GetLocationBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/bookings - Invalid input: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /locations/{id}/bookings - Failed to list bookings: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
