package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

// Repository репозиторий барберов (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает всех барберов, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "working_hours_start", "working_hours_end").
		From("barbers").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		b, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// GetByID получает барбера по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "working_hours_start", "working_hours_end").
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barber: %v", ErrScanRow, err)
	}

	return b, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBarber читает барбера; рабочие часы могут быть NULL
func scanBarber(row rowScanner) (*domain.Barber, error) {
	var b domain.Barber
	var start, end sql.NullInt32

	if err := row.Scan(&b.ID, &b.Name, &start, &end); err != nil {
		return nil, err
	}

	if start.Valid {
		b.WorkingHoursStart = ptr.Ptr(int(start.Int32))
	}
	if end.Valid {
		b.WorkingHoursEnd = ptr.Ptr(int(end.Int32))
	}

	return &b, nil
}
