package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/restopoint/TableReservationService/internal/domain"
	"github.com/restopoint/TableReservationService/pkg/dbmetrics"
	"github.com/restopoint/TableReservationService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении unique constraint
const pgUniqueViolation = "23505"

var tableColumns = []string{
	"id",
	"location_id",
	"table_number",
	"capacity",
	"is_available",
	"created_at",
}

// Repository репозиторий для работы со столами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый стол
// Уникальность (location_id, table_number) обеспечивается constraint'ом БД,
// нарушение транслируется в ErrDuplicateTableNumber
func (r *Repository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns(
			"location_id",
			"table_number",
			"capacity",
			"is_available",
		).
		Values(
			table.LocationID,
			table.TableNumber,
			table.Capacity,
			table.IsAvailable,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTableNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	table.CreatedAt = createdAt.Time

	return table, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	table, err := r.scanTable(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	return table, nil
}

// GetByNumber получает стол по номеру в рамках локации
func (r *Repository) GetByNumber(ctx context.Context, locationID int64, tableNumber int) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"location_id": locationID, "table_number": tableNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	table, err := r.scanTable(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan table: %v", ErrScanRow, err)
	}

	return table, nil
}

// ListByLocation получает все столы локации, отсортированные по номеру
func (r *Repository) ListByLocation(ctx context.Context, locationID int64) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("table_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// ListActiveWithCapacity получает активные столы локации вместимостью не
// меньше minCapacity, отсортированные по вместимости (ASC) и номеру
//
// Порядок задает политику аллокации: наименьший достаточный стол выбирается
// первым, большие столы остаются для больших компаний
func (r *Repository) ListActiveWithCapacity(ctx context.Context, locationID int64, minCapacity int) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"location_id": locationID, "is_available": true}).
		Where(squirrel.GtOrEq{"capacity": minCapacity}).
		OrderBy("capacity ASC, table_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveWithCapacity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveWithCapacity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// SetAvailability переключает флаг "в строю / выведен из обслуживания"
// Идемпотентна: повторная установка того же значения не является ошибкой
func (r *Repository) SetAvailability(ctx context.Context, id int64, isAvailable bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("is_available", isAvailable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

// Delete удаляет стол из инвентаря
// Исторические бронирования сохраняют записанный номер стола
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

func (r *Repository) scanTable(row *sql.Row) (*domain.Table, error) {
	var table domain.Table
	var createdAt sql.NullTime

	err := row.Scan(
		&table.ID,
		&table.LocationID,
		&table.TableNumber,
		&table.Capacity,
		&table.IsAvailable,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	table.CreatedAt = createdAt.Time

	return &table, nil
}

func (r *Repository) scanTables(rows *sql.Rows) ([]*domain.Table, error) {
	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var table domain.Table
		var createdAt sql.NullTime

		err := rows.Scan(
			&table.ID,
			&table.LocationID,
			&table.TableNumber,
			&table.Capacity,
			&table.IsAvailable,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}

		table.CreatedAt = createdAt.Time

		tables = append(tables, &table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением unique constraint
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
