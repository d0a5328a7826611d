package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString время дня в формате "HH:MM" (без даты и секунд)
// Хранится и сериализуется как строка, сравнивается поминутно
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Нормализуем представление ("9:30" -> "09:30")
	return TimeString(t.Format(TimeFormat)), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero проверяет, что значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет корректность формата
func (ts TimeString) Validate() error {
	_, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// TotalMinutes возвращает количество минут с начала суток
func (ts TimeString) TotalMinutes() (int, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперёд
// Результат не переходит через полночь: 23:50 + 30 = ошибка не возвращается,
// время нормализуется по модулю суток средствами time.Time
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return TimeString(t.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore проверяет, что ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.TotalMinutes()
	b, errB := other.TotalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.TotalMinutes()
	b, errB := other.TotalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// MinutesBetween возвращает расстояние в минутах между ts и other (other - ts)
func (ts TimeString) MinutesBetween(other TimeString) (int, error) {
	a, err := ts.TotalMinutes()
	if err != nil {
		return 0, err
	}
	b, err := other.TotalMinutes()
	if err != nil {
		return 0, err
	}
	return b - a, nil
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if ts == "" {
		return nil, nil
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner
// PostgreSQL возвращает колонки TIME как "HH:MM:SS" - нормализуем до "HH:MM"
func (ts *TimeString) Scan(src interface{}) error {
	if src == nil {
		*ts = ""
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}

	for _, layout := range []string{"15:04:05", TimeFormat} {
		if t, err := time.Parse(layout, raw); err == nil {
			*ts = TimeString(t.Format(TimeFormat))
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidTimeString, raw)
}

// OnDate совмещает время дня с датой в указанной локации
func (ts TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
