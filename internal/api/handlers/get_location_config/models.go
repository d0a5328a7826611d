package get_location_config

import (
	"github.com/restopoint/TableReservationService/internal/domain"
)

// ShiftWindowResponse окно смены
type ShiftWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// LunchBreakResponse обеденный перерыв
type LunchBreakResponse struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// LocationConfigResponse HTTP response model с настройками расписания локации
type LocationConfigResponse struct {
	ID                     int64                `json:"id"`
	Name                   string               `json:"name"`
	ScheduleMode           string               `json:"scheduleMode"`
	OpeningTime            string               `json:"openingTime,omitempty"`
	ClosingTime            string               `json:"closingTime,omitempty"`
	LunchBreak             *LunchBreakResponse  `json:"lunchBreak,omitempty"`
	MorningShift           *ShiftWindowResponse `json:"morningShift,omitempty"`
	EveningShift           *ShiftWindowResponse `json:"eveningShift,omitempty"`
	SlotIntervalMinutes    int                  `json:"slotIntervalMinutes"`
	BufferMinutes          int                  `json:"bufferMinutes"`
	MinAdvanceBookingHours int                  `json:"minAdvanceBookingHours"`
	MaxAdvanceBookingDays  int                  `json:"maxAdvanceBookingDays"`
	AllowWeekendBookings   bool                 `json:"allowWeekendBookings"`
	ServiceDurationMinutes int                  `json:"serviceDurationMinutes"`
	Timezone               string               `json:"timezone"`
}

// FromDomainLocation конвертирует domain модель в HTTP response
func FromDomainLocation(loc *domain.Location) *LocationConfigResponse {
	resp := &LocationConfigResponse{
		ID:                     loc.ID,
		Name:                   loc.Name,
		ScheduleMode:           string(loc.ScheduleMode),
		SlotIntervalMinutes:    loc.SlotIntervalMinutes,
		BufferMinutes:          loc.BufferMinutes,
		MinAdvanceBookingHours: loc.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:  loc.MaxAdvanceBookingDays,
		AllowWeekendBookings:   loc.AllowWeekendBookings,
		ServiceDurationMinutes: loc.ServiceDurationMinutes,
		Timezone:               loc.Timezone,
	}

	switch loc.ScheduleMode {
	case domain.ScheduleModeAdvanced:
		resp.MorningShift = &ShiftWindowResponse{
			Start: loc.MorningShift.Start.String(),
			End:   loc.MorningShift.End.String(),
		}
		resp.EveningShift = &ShiftWindowResponse{
			Start: loc.EveningShift.Start.String(),
			End:   loc.EveningShift.End.String(),
		}
	default:
		resp.OpeningTime = loc.OpeningTime.String()
		resp.ClosingTime = loc.ClosingTime.String()
		if loc.LunchBreakEnabled {
			resp.LunchBreak = &LunchBreakResponse{
				Enabled: true,
				Start:   loc.LunchBreakStart.String(),
				End:     loc.LunchBreakEnd.String(),
			}
		}
	}

	return resp
}
