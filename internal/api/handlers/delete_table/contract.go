package delete_table

import "context"

// TableService интерфейс сервиса инвентаря столов
type TableService interface {
	RemoveTable(ctx context.Context, tableID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
