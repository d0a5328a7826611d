package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/restopoint/TableReservationService/internal/domain"
	tableRepo "github.com/restopoint/TableReservationService/internal/infra/storage/table"
)

// Service сервис инвентаря столов
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса инвентаря
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// AddTable добавляет стол в инвентарь локации
// Валидация выполняется до обращения к хранилищу
func (s *Service) AddTable(ctx context.Context, locationID int64, tableNumber, capacity int) (*domain.Table, error) {
	s.logger.Info("AddTable: location=%d, table_number=%d, capacity=%d", locationID, tableNumber, capacity)

	if locationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if tableNumber <= 0 {
		return nil, fmt.Errorf("%w: tableNumber must be positive", ErrInvalidInput)
	}
	if capacity < domain.MinTableCapacity || capacity > domain.MaxTableCapacity {
		return nil, ErrInvalidCapacity
	}

	table := &domain.Table{
		LocationID:  locationID,
		TableNumber: tableNumber,
		Capacity:    capacity,
		IsAvailable: true,
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateTableNumber) {
			s.logger.Warn("AddTable: duplicate table_number=%d at location=%d", tableNumber, locationID)
			return nil, ErrDuplicateTable
		}
		s.logger.Error("AddTable: repository error for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: AddTable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddTable: created table id=%d at location=%d", created.ID, locationID)
	return created, nil
}

// SetTableActive переключает флаг "выведен из обслуживания"
// Идемпотентна: повторная установка того же значения допустима
func (s *Service) SetTableActive(ctx context.Context, tableID int64, isActive bool) error {
	s.logger.Info("SetTableActive: table=%d, active=%t", tableID, isActive)

	if err := s.tableRepo.SetAvailability(ctx, tableID, isActive); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("SetTableActive: table id=%d not found", tableID)
			return ErrTableNotFound
		}
		s.logger.Error("SetTableActive: repository error for table id=%d: %v", tableID, err)
		return fmt.Errorf("%w: SetTableActive - repository error: %v", ErrInternal, err)
	}

	return nil
}

// RemoveTable удаляет стол из инвентаря
// Исторические бронирования сохраняют записанный номер стола для отображения
func (s *Service) RemoveTable(ctx context.Context, tableID int64) error {
	s.logger.Info("RemoveTable: table=%d", tableID)

	if err := s.tableRepo.Delete(ctx, tableID); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("RemoveTable: table id=%d not found", tableID)
			return ErrTableNotFound
		}
		s.logger.Error("RemoveTable: repository error for table id=%d: %v", tableID, err)
		return fmt.Errorf("%w: RemoveTable - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ListTables возвращает столы локации, отсортированные по номеру
func (s *Service) ListTables(ctx context.Context, locationID int64) ([]*domain.Table, error) {
	if locationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	list, err := s.tableRepo.ListByLocation(ctx, locationID)
	if err != nil {
		s.logger.Error("ListTables: repository error for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: ListTables - repository error: %v", ErrInternal, err)
	}

	return list, nil
}
