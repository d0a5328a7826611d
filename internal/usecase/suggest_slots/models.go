package suggest_slots

import (
	"time"

	"github.com/restopoint/TableReservationService/pkg/types"
)

// Request модель запроса подбора альтернативных слотов
type Request struct {
	LocationID    int64
	Date          time.Time
	RequestedTime types.TimeString // Желаемое время, вокруг которого ищем
	PartySize     int

	// Радиус поиска в минутах; 0 = значение из конфигурации сервиса
	RadiusMinutes int
}

// Suggestion один альтернативный слот
type Suggestion struct {
	StartTime       types.TimeString
	DistanceMinutes int // Расстояние от желаемого времени (всегда > 0)
}

// Response модель ответа с подобранными слотами
//
// Слоты отсортированы по близости к желаемому времени;
// при равном расстоянии более ранний слот идет первым
type Response struct {
	Suggestions []Suggestion
}
