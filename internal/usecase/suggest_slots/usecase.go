package suggest_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	locationRepo "github.com/restopoint/TableReservationService/internal/infra/storage/location"
	"github.com/restopoint/TableReservationService/internal/service/availability"
)

// UseCase use case подбора альтернативных слотов
//
// Идет по сгенерированной сетке слотов локации в радиусе от желаемого
// времени и проверяет каждый кандидат резолвером. Кандидатов конечное
// число (сетка конечна), поэтому поиск ограничен по построению
type UseCase struct {
	locationRepo        LocationRepository
	resolver            AvailabilityResolver
	defaultRadiusMinute int
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	locationRepo LocationRepository,
	resolver AvailabilityResolver,
	defaultRadiusMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		locationRepo:        locationRepo,
		resolver:            resolver,
		defaultRadiusMinute: defaultRadiusMinutes,
		logger:              logger,
	}
}

// Execute выполняет подбор альтернативных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestSlots: validation failed: %v", err)
		return nil, err
	}

	radius := req.RadiusMinutes
	if radius <= 0 {
		radius = uc.defaultRadiusMinute
	}

	location, err := uc.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("SuggestSlots: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	candidates := candidatesWithinRadius(location, req.RequestedTime, radius)

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		available, err := uc.resolver.IsAvailable(ctx, availability.Query{
			LocationID: req.LocationID,
			Date:       req.Date,
			Checkin:    c.start,
			PartySize:  req.PartySize,
		})
		if err != nil {
			uc.logger.Error("SuggestSlots: availability check failed for slot %s: %v", c.start, err)
			return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if available {
			suggestions = append(suggestions, Suggestion{
				StartTime:       c.start,
				DistanceMinutes: c.distance,
			})
		}
	}

	// Ближайшие первыми; при равном расстоянии - более ранний слот
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].DistanceMinutes != suggestions[j].DistanceMinutes {
			return suggestions[i].DistanceMinutes < suggestions[j].DistanceMinutes
		}
		return suggestions[i].StartTime.IsBefore(suggestions[j].StartTime)
	})

	uc.logger.Info("SuggestSlots: location=%d, requested=%s, radius=%d -> %d suggestions",
		req.LocationID, req.RequestedTime, radius, len(suggestions))

	return &Response{Suggestions: suggestions}, nil
}

func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: location id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.RequestedTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid requested time: %v", ErrInvalidInput, err)
	}
	if req.PartySize <= 0 {
		return fmt.Errorf("%w: party size must be positive", ErrInvalidInput)
	}
	return nil
}
