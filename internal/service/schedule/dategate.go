package schedule

import (
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// IsDateBookable решает, принимает ли локация бронирования на дату
//
// Правила применяются по порядку, первое сработавшее отклоняет дату:
//  1. дата в списке специальных закрытий локации
//  2. выходные запрещены, а дата попадает на субботу или воскресенье
//  3. конец дня наступает раньше, чем now + минимальное время упреждения
//  4. начало дня позже, чем now + максимальное окно бронирования
//
// Все сравнения идут в часовом поясе локации; now передается вызывающей
// стороной и сэмплируется один раз на вызов, чтобы сравнения внутри одной
// проверки были согласованы
func IsDateBookable(date time.Time, loc *domain.Location, now time.Time) bool {
	if loc == nil {
		return false
	}

	tz := loc.TimeLocation()
	now = now.In(tz)

	if loc.IsClosedOn(date) {
		return false
	}

	if !loc.AllowWeekendBookings {
		wd := date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			return false
		}
	}

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, tz)
	endOfDay := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, tz)

	// Слишком рано: даже последняя минута дня не укладывается в упреждение
	minInstant := now.Add(time.Duration(loc.MinAdvanceBookingHours) * time.Hour)
	if endOfDay.Before(minInstant) {
		return false
	}

	// Слишком далеко: день начинается за пределами окна бронирования
	maxInstant := now.AddDate(0, 0, loc.MaxAdvanceBookingDays)
	if startOfDay.After(maxInstant) {
		return false
	}

	return true
}
