package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/restopoint/TableReservationService/internal/domain"
	locationRepo "github.com/restopoint/TableReservationService/internal/infra/storage/location"
	"github.com/restopoint/TableReservationService/pkg/types"
)

// Query запрос на проверку доступности
//
// Checkout опционален: менеджерские флоу передают явное время ухода,
// публичные - только время прихода, тогда уход выводится из настроенной
// длительности посадки локации. Границы длительности и размера компании
// валидирует вызывающая сторона, резолвер предполагает корректный интервал
type Query struct {
	LocationID       int64
	Date             time.Time
	Checkin          types.TimeString
	Checkout         types.TimeString // пусто = Checkin + ServiceDurationMinutes локации
	PartySize        int
	ExcludeBookingID *int64 // не учитывать это бронирование (редактирование на месте)
}

// Service резолвер доступности: единственная точка, где живет предикат
// пересечения интервалов для всех поверхностей (public/manager/admin)
type Service struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	locationRepo LocationRepository
	logger       Logger
}

// NewService создает новый экземпляр резолвера доступности
func NewService(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	locationRepo LocationRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// IsAvailable проверяет, может ли хотя бы один стол принять компанию
// в запрошенном интервале
func (s *Service) IsAvailable(ctx context.Context, q Query) (bool, error) {
	free, err := s.freeTables(ctx, q)
	if err != nil {
		return false, err
	}
	return len(free) > 0, nil
}

// AvailableTableCount возвращает количество столов, способных принять
// компанию в запрошенном интервале
func (s *Service) AvailableTableCount(ctx context.Context, q Query) (int, error) {
	free, err := s.freeTables(ctx, q)
	if err != nil {
		return 0, err
	}
	return len(free), nil
}

// ResolveTable возвращает стол для аллокации: первый свободный в порядке
// возрастания вместимости (наименьший достаточный, большие столы остаются
// для больших компаний)
func (s *Service) ResolveTable(ctx context.Context, q Query) (*domain.Table, error) {
	free, err := s.freeTables(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(free) == 0 {
		return nil, ErrNoTableAvailable
	}
	return free[0], nil
}

// freeTables возвращает свободные столы-кандидаты в порядке аллокации
func (s *Service) freeTables(ctx context.Context, q Query) ([]*domain.Table, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	start, end, err := s.resolveInterval(ctx, q)
	if err != nil {
		return nil, err
	}

	// Столы с capacity >= partySize, отсортированные по вместимости:
	// сортировка задает политику tie-break аллокатора, а не оптимизацию
	tables, err := s.tableRepo.ListActiveWithCapacity(ctx, q.LocationID, q.PartySize)
	if err != nil {
		return nil, fmt.Errorf("%w: freeTables - list tables: %v", ErrInternal, err)
	}
	if len(tables) == 0 {
		return nil, nil
	}

	bookings, err := s.bookingRepo.GetByLocationWithFilter(ctx, domain.LocationBookingsFilter{
		LocationID:       q.LocationID,
		Date:             &q.Date,
		OnlyAssigned:     true,
		ExcludeBookingID: q.ExcludeBookingID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: freeTables - list bookings: %v", ErrInternal, err)
	}

	return FreeTables(tables, bookings, start, end), nil
}

// resolveInterval вычисляет кандидатный интервал [start, end)
func (s *Service) resolveInterval(ctx context.Context, q Query) (types.TimeString, types.TimeString, error) {
	if !q.Checkout.IsZero() {
		return q.Checkin, q.Checkout, nil
	}

	loc, err := s.locationRepo.GetByID(ctx, q.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			return "", "", ErrLocationNotFound
		}
		return "", "", fmt.Errorf("%w: resolveInterval - get location: %v", ErrInternal, err)
	}

	end, err := q.Checkin.AddMinutes(loc.ServiceDurationMinutes)
	if err != nil {
		return "", "", fmt.Errorf("%w: resolveInterval - derive checkout: %v", ErrInvalidQuery, err)
	}

	return q.Checkin, end, nil
}

// FreeTables отбирает из кандидатов столы без пересекающихся активных
// бронирований на интервале [start, end)
//
// Пересечение полуинтервалов: existing.start < end И existing.end > start.
// Касание границ пересечением не считается - посадка, заканчивающаяся в
// 19:00, не конфликтует с посадкой, начинающейся в 19:00.
// Бронирования без назначенного стола в инварианте не участвуют.
// Порядок кандидатов сохраняется
func FreeTables(tables []*domain.Table, bookings []*domain.Booking, start, end types.TimeString) []*domain.Table {
	free := make([]*domain.Table, 0, len(tables))

	for _, table := range tables {
		occupied := false
		for _, b := range bookings {
			if !b.IsActive() || !b.IsAssigned() {
				continue
			}
			if *b.TableNumber != table.TableNumber {
				continue
			}
			if b.Overlaps(start, end) {
				occupied = true
				break
			}
		}
		if !occupied {
			free = append(free, table)
		}
	}

	return free
}

// validateQuery проверяет обязательные поля запроса
func validateQuery(q Query) error {
	if q.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidQuery)
	}
	if q.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidQuery)
	}
	if q.Checkin.IsZero() {
		return fmt.Errorf("%w: checkin time is required", ErrInvalidQuery)
	}
	if err := q.Checkin.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkin time: %v", ErrInvalidQuery, err)
	}
	if !q.Checkout.IsZero() {
		if err := q.Checkout.Validate(); err != nil {
			return fmt.Errorf("%w: invalid checkout time: %v", ErrInvalidQuery, err)
		}
		if !q.Checkin.IsBefore(q.Checkout) {
			return fmt.Errorf("%w: checkin must be before checkout", ErrInvalidQuery)
		}
	}
	if q.PartySize < domain.MinGuestCount {
		return fmt.Errorf("%w: party size must be at least %d", ErrInvalidQuery, domain.MinGuestCount)
	}
	return nil
}
