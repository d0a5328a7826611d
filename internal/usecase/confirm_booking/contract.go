package confirm_booking

import (
	"context"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/internal/integrations/crmservice"
	"github.com/restopoint/TableReservationService/internal/integrations/mailservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByLocationWithFilter(ctx context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error)
	AssignTable(ctx context.Context, id int64, tableNumber int) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListActiveWithCapacity(ctx context.Context, locationID int64, minCapacity int) ([]*domain.Table, error)
	GetByNumber(ctx context.Context, locationID int64, tableNumber int) (*domain.Table, error)
}

// LocationRepository интерфейс каталога локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CRMClient интерфейс клиента CRM
type CRMClient interface {
	SyncGuestActivity(ctx context.Context, event *crmservice.GuestActivityEvent) error
}

// MailClient интерфейс сервиса нотификаций
type MailClient interface {
	SendBookingConfirmation(ctx context.Context, msg *mailservice.ConfirmationMessage) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
