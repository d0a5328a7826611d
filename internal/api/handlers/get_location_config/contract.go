package get_location_config

import (
	"context"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// LocationRepository интерфейс каталога локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
