package domain

import "time"

// Table represents a physical table at a location
//
// TableNumber is unique within a location. Bookings reference tables loosely
// by (location_id, table_number): deleting a table does not touch historical
// bookings that recorded its number.
type Table struct {
	ID          int64
	LocationID  int64
	TableNumber int
	Capacity    int
	IsAvailable bool // admin-togglable "out of service" flag
	CreatedAt   time.Time
}

// CanSeat returns true if the table is in service and seats the party
func (t *Table) CanSeat(partySize int) bool {
	return t.IsAvailable && t.Capacity >= partySize
}
