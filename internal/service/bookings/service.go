package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/restopoint/TableReservationService/internal/domain"
	bookingRepo "github.com/restopoint/TableReservationService/internal/infra/storage/booking"
	"github.com/restopoint/TableReservationService/internal/integrations/crmservice"
	"github.com/restopoint/TableReservationService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo BookingRepository
	crmClient   CRMClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, crmClient CRMClient, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		crmClient:   crmClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetLocationBookings получает бронирования локации с фильтрацией по дате и статусу
func (s *Service) GetLocationBookings(ctx context.Context, req *models.GetLocationBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetLocationBookings: location=%d", req.LocationID)

	if req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetLocationBookings: invalid filter for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByLocationWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetLocationBookings: repository error for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: GetLocationBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLocationBookings: fetched %d bookings for location=%d", len(bookings), req.LocationID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Переход в cancelled немедленно освобождает стол для проверок доступности
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.notifyCRM(ctx, booking, crmservice.ActivityBookingCancelled)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Complete помечает бронирование завершенным (гости ушли)
func (s *Service) Complete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Complete: completing booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if booking.Status != domain.StatusConfirmed {
		s.logger.Warn("Complete: booking id=%d is not confirmed, status=%s", bookingID, booking.Status)
		return ErrCannotComplete
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.notifyCRM(ctx, booking, crmservice.ActivityBookingCompleted)

	s.logger.Info("Complete: successfully completed booking id=%d", bookingID)
	return nil
}

// notifyCRM уведомляет CRM об изменении бронирования
// CRM не участвует в инварианте - ошибки логируются и не влияют на результат
func (s *Service) notifyCRM(ctx context.Context, booking *domain.Booking, activity crmservice.ActivityType) {
	event := crmservice.NewGuestActivityEvent(booking, activity)
	if err := s.crmClient.SyncGuestActivity(ctx, event); err != nil {
		s.logger.Error("notifyCRM: failed to sync booking id=%d activity=%s: %v", booking.ID, activity, err)
	}
}
