package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/dbmetrics"
	"github.com/rentovia/SDC-RentalService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"booking_ref",
	"customer_name",
	"customer_phone",
	"car_id",
	"car_name",
	"car_brand",
	"pickup_at",
	"drop_at",
	"pickup_location",
	"total_days",
	"extra_hours",
	"base_price",
	"total_amount",
	"advance_amount",
	"deposit_type",
	"deposit_amount",
	"payment_ref",
	"created_at",
}

// Repository репозиторий подтвержденных бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает подтвержденное бронирование
// Вызывается внутри сериализуемой транзакции из usecase подтверждения оплаты,
// повторная проверка уникальности booking_ref выполняется через ExistsByRef
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_ref",
			"customer_name",
			"customer_phone",
			"car_id",
			"car_name",
			"car_brand",
			"pickup_at",
			"drop_at",
			"pickup_location",
			"total_days",
			"extra_hours",
			"base_price",
			"total_amount",
			"advance_amount",
			"deposit_type",
			"deposit_amount",
			"payment_ref",
		).
		Values(
			booking.BookingRef,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CarID,
			booking.CarName,
			booking.CarBrand,
			booking.PickupAt,
			booking.DropAt,
			booking.PickupLocation,
			booking.TotalDays,
			booking.ExtraHours,
			booking.BasePrice,
			booking.TotalAmount,
			booking.AdvanceAmount,
			booking.DepositType,
			booking.DepositAmount,
			booking.PaymentRef,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// ExistsByRef проверяет, занят ли идентификатор бронирования
func (r *Repository) ExistsByRef(ctx context.Context, ref string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"booking_ref": ref}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByRef - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByRef - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByRef получает бронирование по идентификатору
func (r *Repository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_ref": ref}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingRef,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CarID,
		&booking.CarName,
		&booking.CarBrand,
		&booking.PickupAt,
		&booking.DropAt,
		&booking.PickupLocation,
		&booking.TotalDays,
		&booking.ExtraHours,
		&booking.BasePrice,
		&booking.TotalAmount,
		&booking.AdvanceAmount,
		&booking.DepositType,
		&booking.DepositAmount,
		&booking.PaymentRef,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}
