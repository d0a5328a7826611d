package create_booking

import (
	"time"

	"github.com/restopoint/TableReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	LocationID    int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	GuestCount    int
	Date          time.Time        // Дата бронирования (без времени)
	CheckinTime   types.TimeString // Время прихода ("19:00")

	// Явное время ухода (менеджерские/админские флоу)
	// Пусто = checkin + длительность посадки локации
	CheckoutTime types.TimeString

	Source string  // public / manager / admin; пусто = public
	Notes  *string // Дополнительные пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	LocationID    int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	GuestCount    int
	BookingDate   time.Time
	CheckinTime   types.TimeString
	CheckoutTime  types.TimeString
	Status        string
	Source        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
