package schedule

import (
	"sort"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/pkg/types"
)

// GenerateSlots превращает настройки рабочих часов локации в упорядоченную
// сетку времен посадки
//
// В simple-режиме сетка идет от открытия до закрытия с шагом interval+buffer;
// включенный обеденный перерыв разрезает окно на два независимых сегмента.
// В advanced-режиме независимо генерируются утренняя и вечерняя смены.
//
// Результат полностью детерминирован настройками. Некорректная конфигурация
// (открытие не раньше закрытия, нечитаемое время, неположительный интервал)
// дает пустую сетку, а не ошибку
func GenerateSlots(loc *domain.Location) []types.TimeString {
	if loc == nil || loc.SlotIntervalMinutes <= 0 || loc.BufferMinutes < 0 {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0)

	for _, seg := range segments(loc) {
		slots = append(slots, generateSegment(seg.Start, seg.End, loc.SlotIntervalMinutes, loc.BufferMinutes)...)
	}

	return slots
}

// GenerateSlotsForBooking генерирует сетку и добавляет в нее записанное время
// существующего бронирования, если оно выпало из свежей сетки (например,
// интервал изменили после создания брони). Литеральное время вставляется
// по порядку и дедуплицируется, чтобы при редактировании его можно было
// выбрать снова
func GenerateSlotsForBooking(loc *domain.Location, recorded types.TimeString) []types.TimeString {
	slots := GenerateSlots(loc)

	if recorded.IsZero() || recorded.Validate() != nil {
		return slots
	}

	for _, s := range slots {
		if s == recorded {
			return slots
		}
	}

	slots = append(slots, recorded)
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].IsBefore(slots[j])
	})

	return slots
}

// ContainsSlot проверяет, что время лежит на сетке слотов локации
func ContainsSlot(loc *domain.Location, t types.TimeString) bool {
	for _, s := range GenerateSlots(loc) {
		if s == t {
			return true
		}
	}
	return false
}

// segments возвращает рабочие сегменты дня в хронологическом порядке
func segments(loc *domain.Location) []domain.ShiftWindow {
	if loc.ScheduleMode == domain.ScheduleModeAdvanced {
		return []domain.ShiftWindow{loc.MorningShift, loc.EveningShift}
	}

	window := domain.ShiftWindow{Start: loc.OpeningTime, End: loc.ClosingTime}

	if !loc.LunchBreakEnabled {
		return []domain.ShiftWindow{window}
	}

	// Перерыв разрезает окно на "до обеда" и "после обеда"
	return []domain.ShiftWindow{
		{Start: loc.OpeningTime, End: loc.LunchBreakStart},
		{Start: loc.LunchBreakEnd, End: loc.ClosingTime},
	}
}

// generateSegment генерирует слоты одного сегмента [start, end)
// Слот попадает в сетку, только если до конца сегмента остается хотя бы один
// полный интервал: начало никогда не выходит за границу закрытия
func generateSegment(start, end types.TimeString, intervalMinutes, bufferMinutes int) []types.TimeString {
	if start.Validate() != nil || end.Validate() != nil {
		return nil
	}
	if !start.IsBefore(end) {
		return nil
	}

	step := intervalMinutes + bufferMinutes
	slots := make([]types.TimeString, 0)

	cursor := start
	for {
		slotEnd, err := cursor.AddMinutes(intervalMinutes)
		if err != nil {
			return slots
		}
		// AddMinutes нормализует по модулю суток: переход через полночь
		// проявляется как slotEnd < cursor
		if slotEnd.IsAfter(end) || slotEnd.IsBefore(cursor) {
			return slots
		}

		slots = append(slots, cursor)

		next, err := cursor.AddMinutes(step)
		if err != nil || !next.IsAfter(cursor) {
			return slots
		}
		cursor = next
	}
}
