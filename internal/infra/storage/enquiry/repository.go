package enquiry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/dbmetrics"
	"github.com/rentovia/SDC-RentalService/pkg/psqlbuilder"
)

var enquiryColumns = []string{
	"id",
	"customer_name",
	"customer_phone",
	"pickup_at",
	"drop_at",
	"pickup_location",
	"total_days",
	"extra_hours",
	"transmission",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает заявку
func (r *Repository) Create(ctx context.Context, enq *domain.Enquiry) (*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("enquiries").
		Columns(
			"customer_name",
			"customer_phone",
			"pickup_at",
			"drop_at",
			"pickup_location",
			"total_days",
			"extra_hours",
			"transmission",
			"status",
		).
		Values(
			enq.CustomerName,
			enq.CustomerPhone,
			enq.PickupAt,
			enq.DropAt,
			enq.PickupLocation,
			enq.TotalDays,
			enq.ExtraHours,
			enq.Transmission,
			enq.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&enq.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	enq.CreatedAt = createdAt.Time
	enq.UpdatedAt = updatedAt.Time

	return enq, nil
}

// CountByPhoneSince считает заявки с указанного телефона начиная с момента since
// Используется для серверного rate limit на поток заявок
func (r *Repository) CountByPhoneSince(ctx context.Context, phone string, since time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("enquiries").
		Where(squirrel.Eq{"customer_phone": phone}).
		Where(squirrel.GtOrEq{"created_at": since}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByPhoneSince - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByPhoneSince - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// List получает заявки, сначала новые
// Опционально фильтрует по статусу
func (r *Repository) List(ctx context.Context, status *domain.EnquiryStatus) ([]*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(enquiryColumns...).
		From("enquiries").
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	enquiries := make([]*domain.Enquiry, 0)
	for rows.Next() {
		var enq domain.Enquiry
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&enq.ID,
			&enq.CustomerName,
			&enq.CustomerPhone,
			&enq.PickupAt,
			&enq.DropAt,
			&enq.PickupLocation,
			&enq.TotalDays,
			&enq.ExtraHours,
			&enq.Transmission,
			&enq.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan enquiry: %v", ErrScanRow, err)
		}

		enq.CreatedAt = createdAt.Time
		enq.UpdatedAt = updatedAt.Time
		enquiries = append(enquiries, &enq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return enquiries, nil
}

// UpdateStatus меняет статус заявки при триаже
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("enquiries").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrEnquiryNotFound
	}

	return nil
}
