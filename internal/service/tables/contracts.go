package tables

import (
	"context"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	ListByLocation(ctx context.Context, locationID int64) ([]*domain.Table, error)
	SetAvailability(ctx context.Context, id int64, isAvailable bool) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
