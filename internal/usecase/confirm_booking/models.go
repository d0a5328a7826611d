package confirm_booking

import (
	"time"

	"github.com/restopoint/TableReservationService/pkg/types"
)

// Request модель запроса на подтверждение бронирования с выделением стола
type Request struct {
	BookingID int64

	// Явно выбранный стол (ручное назначение в менеджерском портале)
	// nil = аллокатор выбирает наименьший подходящий стол сам
	RequestedTableNumber *int
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	BookingID           int64
	LocationID          int64
	AssignedTableNumber int
	GuestCount          int
	BookingDate         time.Time
	CheckinTime         types.TimeString
	CheckoutTime        types.TimeString
	Status              string
}
