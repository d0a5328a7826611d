package get_available_slots

import (
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// Request модель запроса слотов на день
type Request struct {
	LocationID int64
	Date       time.Time
	PartySize  int // 0 = без фильтра по вместимости
}

// Response модель ответа со слотами дня
//
// Закрытый или недоступный день - не ошибка: Bookable=false и пустой
// список слотов
type Response struct {
	Bookable bool
	Slots    []domain.SlotAvailability
}
