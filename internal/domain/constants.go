package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes    = 30
	DefaultBufferMinutes          = 0
	DefaultServiceDurationMinutes = 120 // стандартная посадка - 2 часа
	DefaultMinAdvanceBookingHours = 2
	DefaultMaxAdvanceBookingDays  = 30
	DefaultTimezone               = "UTC"
)

// Business validation constants
const (
	MinTableCapacity = 1
	MaxTableCapacity = 100

	MinGuestCount = 1
	MaxGuestCount = 100

	// Явная длительность посадки в админских флоу: от 1 до 6 часов
	MinServiceDurationMinutes = 60
	MaxServiceDurationMinutes = 360

	MaxCustomerNameLength = 200
	MaxNotesLength        = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие стол
// Переход в любой из них немедленно освобождает стол для проверок доступности
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses статусы, участвующие в инварианте пересечений
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
