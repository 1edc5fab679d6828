package car

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
)

func carRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "brand", "category", "price",
		"price_3_days", "price_7_days", "price_15_days",
		"transmission", "fuel", "km_limit", "image_url",
		"created_at", "updated_at",
	}).
		AddRow(1, "Swift", "Maruti", "Hatchback", 2500.0, 2200.0, 2000.0, 1800.0,
			"Manual", "Petrol", 300, "https://cdn.example.com/swift.jpg", now, now).
		AddRow(2, "Creta", "Hyundai", "SUV", 3200.0, nil, nil, nil,
			"Automatic", "Diesel", 300, "https://cdn.example.com/creta.jpg", now, now)
}

func TestRepository_List_DefaultOrderIsPriceAsc(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM cars ORDER BY price ASC`).
		WillReturnRows(carRows())

	repo := NewRepository(db)
	cars, err := repo.ListOrderedByPrice(context.Background())

	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "Swift", cars[0].Name)
	assert.Equal(t, ptr.Ptr(2200.0), cars[0].Price3Days)
	assert.Nil(t, cars[1].Price3Days)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_SearchAndSort(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM cars WHERE \(name ILIKE .+ OR brand ILIKE .+ OR category ILIKE .+\) ORDER BY name DESC`).
		WithArgs("%suv%", "%suv%", "%suv%").
		WillReturnRows(carRows())

	repo := NewRepository(db)
	_, err = repo.List(context.Background(), domain.CarFilter{SortBy: "name", Order: "desc", Search: "suv"})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM cars WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewRepository(db)
	_, err = repo.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrCarNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM cars WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrCarNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
