package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/restopoint/TableReservationService/internal/domain"
	locationRepo "github.com/restopoint/TableReservationService/internal/infra/storage/location"
	"github.com/restopoint/TableReservationService/internal/integrations/crmservice"
	"github.com/restopoint/TableReservationService/internal/service/availability"
	"github.com/restopoint/TableReservationService/internal/service/schedule"
	"github.com/restopoint/TableReservationService/pkg/types"
)

// UseCase use case создания бронирования
//
// Бронирование создается неназначенным (table_number = NULL) в статусе
// pending: до аллокации оно не участвует в инварианте пересечений.
// Проверка доступности здесь - ранний отказ для клиента; финальная проверка
// выполняется аллокатором при подтверждении
type UseCase struct {
	bookingRepo  BookingRepository
	locationRepo LocationRepository
	resolver     AvailabilityResolver
	crmClient    CRMClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	locationRepo LocationRepository,
	resolver AvailabilityResolver,
	crmClient CRMClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		locationRepo: locationRepo,
		resolver:     resolver,
		crmClient:    crmClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: location=%d, date=%s, time=%s, guests=%d",
		req.LocationID, req.Date.Format(domain.DateFormat), req.CheckinTime, req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время (один раз на весь вызов)
	now := uc.timeProvider.Now()

	// 3. Получаем локацию с настройками рабочих часов
	location, err := uc.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("CreateBooking: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 4. Date gate: закрытия, выходные, окно бронирования
	if !schedule.IsDateBookable(req.Date, location, now) {
		uc.logger.Warn("CreateBooking: date %s is not bookable at location=%d",
			req.Date.Format(domain.DateFormat), req.LocationID)
		return nil, ErrDateNotBookable
	}

	// 5. Время прихода должно лежать на сетке слотов
	if !schedule.ContainsSlot(location, req.CheckinTime) {
		uc.logger.Warn("CreateBooking: time %s is not on the slot grid of location=%d",
			req.CheckinTime, req.LocationID)
		return nil, ErrInvalidTimeSlot
	}

	// 6. Вычисляем интервал посадки
	checkout, err := resolveCheckout(req, location)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve checkout: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve checkout: %v", ErrInternal, err)
	}

	// 7. Ранняя проверка доступности
	available, err := uc.resolver.IsAvailable(ctx, availability.Query{
		LocationID: req.LocationID,
		Date:       req.Date,
		Checkin:    req.CheckinTime,
		Checkout:   checkout,
		PartySize:  req.GuestCount,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("CreateBooking: slot %s-%s not available at location=%d for %d guests",
			req.CheckinTime, checkout, req.LocationID, req.GuestCount)
		return nil, ErrSlotNotAvailable
	}

	// 8. Создаем бронирование без назначенного стола
	source := domain.BookingSource(req.Source)
	if source == "" {
		source = domain.SourcePublic
	}

	booking := &domain.Booking{
		LocationID:    req.LocationID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		GuestCount:    req.GuestCount,
		BookingDate:   req.Date,
		CheckinTime:   req.CheckinTime,
		CheckoutTime:  checkout,
		Status:        domain.StatusPending,
		Source:        source,
		Notes:         req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	// 9. Уведомляем CRM (вне инварианта, ошибка не отменяет бронирование)
	if err := uc.crmClient.SyncGuestActivity(ctx, crmservice.NewGuestActivityEvent(created, crmservice.ActivityBookingCreated)); err != nil {
		uc.logger.Error("CreateBooking: CRM sync failed for booking id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:            created.ID,
		LocationID:    created.LocationID,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		CustomerEmail: created.CustomerEmail,
		GuestCount:    created.GuestCount,
		BookingDate:   created.BookingDate,
		CheckinTime:   created.CheckinTime,
		CheckoutTime:  created.CheckoutTime,
		Status:        string(created.Status),
		Source:        string(created.Source),
		Notes:         created.Notes,
		CreatedAt:     created.CreatedAt,
		UpdatedAt:     created.UpdatedAt,
	}, nil
}

// resolveCheckout вычисляет время ухода: явное из запроса или
// checkin + длительность посадки локации
// Один и тот же дефолт используется резолвером, аллокатором и этим usecase
func resolveCheckout(req *Request, location *domain.Location) (types.TimeString, error) {
	if !req.CheckoutTime.IsZero() {
		return req.CheckoutTime, nil
	}
	return req.CheckinTime.AddMinutes(location.ServiceDurationMinutes)
}
