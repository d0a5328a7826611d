package domain

import "github.com/restopoint/TableReservationService/pkg/types"

// SlotAvailability represents one bookable time slot with the number of
// tables still able to host the requested party
type SlotAvailability struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableTables int
	TotalTables     int
}

// IsFull returns true if no table can host the party at this slot
func (s *SlotAvailability) IsFull() bool {
	return s.AvailableTables <= 0
}

// IsFullyAvailable returns true if every candidate table is free
func (s *SlotAvailability) IsFullyAvailable() bool {
	return s.AvailableTables == s.TotalTables
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *SlotAvailability) OccupancyRate() float64 {
	if s.TotalTables == 0 {
		return 0
	}
	occupied := s.TotalTables - s.AvailableTables
	return float64(occupied) / float64(s.TotalTables) * 100
}
