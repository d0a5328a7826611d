package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/restopoint/TableReservationService/internal/domain"
	locationRepo "github.com/restopoint/TableReservationService/internal/infra/storage/location"
	"github.com/restopoint/TableReservationService/internal/service/availability"
	"github.com/restopoint/TableReservationService/internal/service/schedule"
	"github.com/restopoint/TableReservationService/pkg/ptr"
)

// UseCase use case получения слотов дня со счетчиками свободных столов
//
// Столы и бронирования дня загружаются один раз, счетчики по всем
// слотам считаются в памяти на одном и том же предикате пересечения
type UseCase struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	locationRepo LocationRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	locationRepo LocationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		locationRepo: locationRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	location, err := uc.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// Закрытый день или день вне окна бронирования - пустой ответ
	if !schedule.IsDateBookable(req.Date, location, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date %s is not bookable at location=%d",
			req.Date.Format(domain.DateFormat), req.LocationID)
		return &Response{Bookable: false, Slots: []domain.SlotAvailability{}}, nil
	}

	minCapacity := req.PartySize
	if minCapacity <= 0 {
		minCapacity = 1
	}

	tables, err := uc.tableRepo.ListActiveWithCapacity(ctx, req.LocationID, minCapacity)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list tables for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByLocationWithFilter(ctx, domain.LocationBookingsFilter{
		LocationID:   req.LocationID,
		Date:         ptr.Ptr(req.Date),
		OnlyAssigned: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	grid := schedule.GenerateSlots(location)
	slots := make([]domain.SlotAvailability, 0, len(grid))

	for _, start := range grid {
		end, err := start.AddMinutes(location.ServiceDurationMinutes)
		if err != nil {
			continue
		}

		free := availability.FreeTables(tables, bookings, start, end)

		slots = append(slots, domain.SlotAvailability{
			StartTime:       start,
			DurationMinutes: location.ServiceDurationMinutes,
			AvailableTables: len(free),
			TotalTables:     len(tables),
		})
	}

	uc.logger.Info("GetAvailableSlots: location=%d, date=%s -> %d slots",
		req.LocationID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{Bookable: true, Slots: slots}, nil
}

func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: location id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.PartySize < 0 {
		return fmt.Errorf("%w: party size must not be negative", ErrInvalidInput)
	}
	return nil
}
