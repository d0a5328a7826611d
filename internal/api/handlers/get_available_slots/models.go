package get_available_slots

import (
	getAvailableSlots "github.com/restopoint/TableReservationService/internal/usecase/get_available_slots"
)

// SlotItem один слот дня со счетчиком свободных столов
type SlotItem struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	AvailableTables int    `json:"availableTables"`
	TotalTables     int    `json:"totalTables"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Bookable bool        `json:"bookable"`
	Slots    []*SlotItem `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]*SlotItem, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, &SlotItem{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			AvailableTables: s.AvailableTables,
			TotalTables:     s.TotalTables,
		})
	}
	return &AvailableSlotsResponse{
		Bookable: resp.Bookable,
		Slots:    slots,
	}
}
