package availability

import (
	"context"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListActiveWithCapacity(ctx context.Context, locationID int64, minCapacity int) ([]*domain.Table, error)
}

// LocationRepository интерфейс каталога локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
