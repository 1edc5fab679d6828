package car

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/dbmetrics"
	"github.com/rentovia/SDC-RentalService/pkg/psqlbuilder"
)

var carColumns = []string{
	"id",
	"name",
	"brand",
	"category",
	"price",
	"price_3_days",
	"price_7_days",
	"price_15_days",
	"transmission",
	"fuel",
	"km_limit",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий автопарка
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автопарка
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет автомобиль в автопарк
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"name",
			"brand",
			"category",
			"price",
			"price_3_days",
			"price_7_days",
			"price_15_days",
			"transmission",
			"fuel",
			"km_limit",
			"image_url",
		).
		Values(
			car.Name,
			car.Brand,
			car.Category,
			car.Price,
			car.Price3Days,
			car.Price7Days,
			car.Price15Days,
			car.Transmission,
			car.Fuel,
			car.KmLimit,
			car.ImageURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&car.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return car, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	car, err := scanCar(row)
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	return car, nil
}

// List получает автопарк с фильтрацией и сортировкой каталога
// Без явной сортировки возвращает автомобили по возрастанию базовой цены -
// на этом порядке строится список доступности
func (r *Repository) List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).From("cars")

	// Поиск по названию, марке и категории
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"brand": pattern},
			squirrel.ILike{"category": pattern},
		})
	}

	selectBuilder = selectBuilder.OrderBy(orderClause(filter))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// ListOrderedByPrice получает весь автопарк по возрастанию базовой цены
func (r *Repository) ListOrderedByPrice(ctx context.Context) ([]*domain.Car, error) {
	return r.List(ctx, domain.CarFilter{})
}

// Update обновляет автомобиль целиком
func (r *Repository) Update(ctx context.Context, car *domain.Car) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("name", car.Name).
		Set("brand", car.Brand).
		Set("category", car.Category).
		Set("price", car.Price).
		Set("price_3_days", car.Price3Days).
		Set("price_7_days", car.Price7Days).
		Set("price_15_days", car.Price15Days).
		Set("transmission", car.Transmission).
		Set("fuel", car.Fuel).
		Set("km_limit", car.KmLimit).
		Set("image_url", car.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": car.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// Delete удаляет автомобиль из автопарка
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// orderClause строит ORDER BY из фильтра каталога
// Некорректные значения не считаются ошибкой - применяется порядок по умолчанию
func orderClause(filter domain.CarFilter) string {
	column := "price"
	if filter.SortBy == "name" {
		column = "name"
	}

	direction := "ASC"
	if strings.EqualFold(filter.Order, "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.Brand,
		&car.Category,
		&car.Price,
		&car.Price3Days,
		&car.Price7Days,
		&car.Price15Days,
		&car.Transmission,
		&car.Fuel,
		&car.KmLimit,
		&car.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return &car, nil
}

func scanCars(rows *sql.Rows) ([]*domain.Car, error) {
	cars := make([]*domain.Car, 0)

	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan car: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return cars, nil
}
