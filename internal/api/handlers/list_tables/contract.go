package list_tables

import (
	"context"

	"github.com/restopoint/TableReservationService/internal/domain"
)

// TableService интерфейс сервиса инвентаря столов
type TableService interface {
	ListTables(ctx context.Context, locationID int64) ([]*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
