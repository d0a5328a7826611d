package update_table

import "context"

// TableService интерфейс сервиса инвентаря столов
type TableService interface {
	SetTableActive(ctx context.Context, tableID int64, isActive bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
