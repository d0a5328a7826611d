package suggest_slots

import (
	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/internal/service/schedule"
	"github.com/restopoint/TableReservationService/pkg/types"
)

// candidate слот сетки с расстоянием до желаемого времени
type candidate struct {
	start    types.TimeString
	distance int
}

// candidatesWithinRadius отбирает слоты сетки локации в радиусе от
// желаемого времени. Само желаемое время исключается: подбор вызывается,
// когда оно уже отклонено
func candidatesWithinRadius(loc *domain.Location, requested types.TimeString, radiusMinutes int) []candidate {
	grid := schedule.GenerateSlots(loc)

	candidates := make([]candidate, 0, len(grid))
	for _, slot := range grid {
		if slot == requested {
			continue
		}

		distance, err := requested.MinutesBetween(slot)
		if err != nil {
			continue
		}
		if distance < 0 {
			distance = -distance
		}
		if distance > radiusMinutes {
			continue
		}

		candidates = append(candidates, candidate{start: slot, distance: distance})
	}

	return candidates
}
