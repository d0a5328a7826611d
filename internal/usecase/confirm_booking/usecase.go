package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/restopoint/TableReservationService/internal/domain"
	bookingRepo "github.com/restopoint/TableReservationService/internal/infra/storage/booking"
	locationRepo "github.com/restopoint/TableReservationService/internal/infra/storage/location"
	"github.com/restopoint/TableReservationService/internal/integrations/crmservice"
	"github.com/restopoint/TableReservationService/internal/integrations/mailservice"
	"github.com/restopoint/TableReservationService/internal/service/availability"
	"github.com/restopoint/TableReservationService/pkg/simpletxmanager"
	"github.com/restopoint/TableReservationService/pkg/txmanager"
	"github.com/restopoint/TableReservationService/pkg/types"
)

// UseCase аллокатор столов: подтверждает бронирование, атомарно закрепляя
// за ним физический стол
//
// Критическая секция "проверить доступность - записать назначение" выполняется
// в сериализуемой транзакции с блокировкой строк дня (FOR UPDATE): два
// конкурентных подтверждения на пересекающиеся интервалы одного стола не
// могут пройти оба
type UseCase struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	locationRepo LocationRepository
	txManager    TransactionManager
	crmClient    CRMClient
	mailClient   MailClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	locationRepo LocationRepository,
	txManager TransactionManager,
	crmClient CRMClient,
	mailClient MailClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		locationRepo: locationRepo,
		txManager:    txManager,
		crmClient:    crmClient,
		mailClient:   mailClient,
		logger:       logger,
	}
}

// Execute выполняет подтверждение бронирования
// При конфликте сериализации аллокация повторяется один раз: ранее
// "свободный" стол мог быть занят, повторная попытка перечитывает состояние
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking=%d, requested_table=%v", req.BookingID, req.RequestedTableNumber)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CanBeConfirmed() {
		uc.logger.Warn("ConfirmBooking: booking id=%d cannot be confirmed, status=%s", booking.ID, booking.Status)
		return nil, ErrCannotConfirm
	}

	// 2. Получаем локацию (нужна длительность посадки по умолчанию)
	location, err := uc.locationRepo.GetByID(ctx, booking.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("ConfirmBooking: location id=%d not found", booking.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get location id=%d: %v", booking.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	start, end, err := bookingInterval(booking, location)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to resolve interval for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to resolve interval: %v", ErrInternal, err)
	}

	// 3. Аллоцируем стол в сериализуемой транзакции
	// Конфликт сериализации - одна автоматическая повторная попытка
	assignedTable, err := uc.allocateWithRetry(ctx, booking, req.RequestedTableNumber, start, end)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed at table=%d", booking.ID, assignedTable)

	booking.Status = domain.StatusConfirmed
	booking.TableNumber = &assignedTable

	// 4. Уведомления: CRM и письмо-подтверждение
	// Оба сервиса вне инварианта - ошибки логируются и не отменяют бронирование
	uc.notify(ctx, booking, assignedTable)

	return &Response{
		BookingID:           booking.ID,
		LocationID:          booking.LocationID,
		AssignedTableNumber: assignedTable,
		GuestCount:          booking.GuestCount,
		BookingDate:         booking.BookingDate,
		CheckinTime:         start,
		CheckoutTime:        end,
		Status:              string(domain.StatusConfirmed),
	}, nil
}

// allocateWithRetry выполняет аллокацию, повторяя ее один раз при конфликте
// сериализуемых транзакций
func (uc *UseCase) allocateWithRetry(
	ctx context.Context,
	booking *domain.Booking,
	requestedTable *int,
	start, end types.TimeString,
) (int, error) {
	assigned, err := uc.allocate(ctx, booking, requestedTable, start, end)
	if err == nil {
		return assigned, nil
	}

	if !isSerializationConflict(err) {
		return 0, err
	}

	uc.logger.Warn("ConfirmBooking: serialization conflict for booking id=%d, retrying once", booking.ID)

	assigned, err = uc.allocate(ctx, booking, requestedTable, start, end)
	if err == nil {
		return assigned, nil
	}

	if isSerializationConflict(err) {
		uc.logger.Warn("ConfirmBooking: serialization conflict persists for booking id=%d", booking.ID)
		return 0, ErrConcurrencyConflict
	}

	return 0, err
}

// allocate одна попытка аллокации: проверка и запись в одной транзакции
func (uc *UseCase) allocate(
	ctx context.Context,
	booking *domain.Booking,
	requestedTable *int,
	start, end types.TimeString,
) (int, error) {
	var assignedTable int

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Бронирования дня читаются с блокировкой FOR UPDATE; собственная
		// прежняя резервация исключается - перевыделение при редактировании
		// проверяется против нового интервала
		busy, err := uc.bookingRepo.GetByLocationWithFilter(txCtx, domain.LocationBookingsFilter{
			LocationID:       booking.LocationID,
			Date:             &booking.BookingDate,
			OnlyAssigned:     true,
			ExcludeBookingID: &booking.ID,
		})
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if requestedTable != nil {
			assignedTable, err = uc.validateRequestedTable(txCtx, booking, *requestedTable, busy, start, end)
		} else {
			assignedTable, err = uc.pickSmallestFreeTable(txCtx, booking, busy, start, end)
		}
		if err != nil {
			return err
		}

		return uc.bookingRepo.AssignTable(txCtx, booking.ID, assignedTable)
	})

	if err != nil {
		return 0, err
	}

	return assignedTable, nil
}

// pickSmallestFreeTable выбирает наименьший свободный стол достаточной вместимости
func (uc *UseCase) pickSmallestFreeTable(
	ctx context.Context,
	booking *domain.Booking,
	busy []*domain.Booking,
	start, end types.TimeString,
) (int, error) {
	candidates, err := uc.tableRepo.ListActiveWithCapacity(ctx, booking.LocationID, booking.GuestCount)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to list tables: %v", err)
		return 0, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	free := availability.FreeTables(candidates, busy, start, end)
	if len(free) == 0 {
		uc.logger.Warn("ConfirmBooking: no table available for booking id=%d (%d guests, %s-%s)",
			booking.ID, booking.GuestCount, start, end)
		return 0, ErrNoTableAvailable
	}

	return free[0].TableNumber, nil
}

// validateRequestedTable проверяет явно выбранный стол: существование,
// принадлежность локации, вместимость и отсутствие пересечений
func (uc *UseCase) validateRequestedTable(
	ctx context.Context,
	booking *domain.Booking,
	tableNumber int,
	busy []*domain.Booking,
	start, end types.TimeString,
) (int, error) {
	table, err := uc.tableRepo.GetByNumber(ctx, booking.LocationID, tableNumber)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: requested table=%d not found at location=%d", tableNumber, booking.LocationID)
		return 0, ErrTableUnavailable
	}

	if !table.CanSeat(booking.GuestCount) {
		uc.logger.Warn("ConfirmBooking: requested table=%d cannot seat %d guests", tableNumber, booking.GuestCount)
		return 0, ErrTableUnavailable
	}

	if len(availability.FreeTables([]*domain.Table{table}, busy, start, end)) == 0 {
		uc.logger.Warn("ConfirmBooking: requested table=%d is occupied in %s-%s", tableNumber, start, end)
		return 0, ErrTableUnavailable
	}

	return table.TableNumber, nil
}

// notify отправляет уведомления после успешного подтверждения
func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking, tableNumber int) {
	if err := uc.crmClient.SyncGuestActivity(ctx, crmservice.NewGuestActivityEvent(booking, crmservice.ActivityBookingConfirmed)); err != nil {
		uc.logger.Error("ConfirmBooking: CRM sync failed for booking id=%d: %v", booking.ID, err)
	}

	if err := uc.mailClient.SendBookingConfirmation(ctx, mailservice.NewConfirmationMessage(booking, tableNumber)); err != nil {
		uc.logger.Error("ConfirmBooking: confirmation dispatch failed for booking id=%d: %v", booking.ID, err)
	}
}

// bookingInterval вычисляет интервал [checkin, checkout) бронирования
// Без явного checkout уход выводится из настроенной длительности посадки -
// тот же дефолт, что использует резолвер доступности
func bookingInterval(booking *domain.Booking, location *domain.Location) (types.TimeString, types.TimeString, error) {
	if !booking.CheckoutTime.IsZero() {
		return booking.CheckinTime, booking.CheckoutTime, nil
	}

	end, err := booking.CheckinTime.AddMinutes(location.ServiceDurationMinutes)
	if err != nil {
		return "", "", err
	}

	return booking.CheckinTime, end, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.RequestedTableNumber != nil && *req.RequestedTableNumber <= 0 {
		return fmt.Errorf("%w: requested table number must be positive", ErrInvalidInput)
	}
	return nil
}

// isSerializationConflict распознает конфликт сериализуемых транзакций
// обоих менеджеров (с метриками и без)
func isSerializationConflict(err error) bool {
	return errors.Is(err, txmanager.ErrSerializationFailure) ||
		errors.Is(err, simpletxmanager.ErrSerializationFailure)
}
