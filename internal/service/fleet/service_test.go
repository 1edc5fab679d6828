package fleet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	carRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/car"
	"github.com/rentovia/SDC-RentalService/internal/service/fleet/models"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
)

type stubCarRepo struct {
	cars       []*domain.Car
	lastFilter domain.CarFilter
	created    *domain.Car
	updated    *domain.Car
	deletedID  int64
	err        error
}

func (r *stubCarRepo) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	if r.err != nil {
		return nil, r.err
	}
	car.ID = 1
	r.created = car
	return car, nil
}

func (r *stubCarRepo) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, car := range r.cars {
		if car.ID == id {
			return car, nil
		}
	}
	if r.updated != nil && r.updated.ID == id {
		return r.updated, nil
	}
	return nil, carRepo.ErrCarNotFound
}

func (r *stubCarRepo) List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastFilter = filter
	return r.cars, nil
}

func (r *stubCarRepo) Update(ctx context.Context, car *domain.Car) error {
	if r.err != nil {
		return r.err
	}
	r.updated = car
	return nil
}

func (r *stubCarRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	r.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validCreateRequest() *models.CreateCarRequest {
	return &models.CreateCarRequest{
		Name:         "Swift",
		Brand:        "Maruti",
		Category:     "Hatchback",
		Price:        2200,
		Price3Days:   ptr.Ptr(2000.0),
		Transmission: "Manual",
		Fuel:         "Petrol",
		KmLimit:      300,
	}
}

func TestList_PassesFilterToRepository(t *testing.T) {
	repo := &stubCarRepo{cars: []*domain.Car{{ID: 1, Name: "Swift"}}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListCarsRequest{
		SortBy: "name",
		Order:  "desc",
		Search: "swift",
	})
	require.NoError(t, err)

	assert.Len(t, resp.Cars, 1)
	assert.Equal(t, domain.CarFilter{SortBy: "name", Order: "desc", Search: "swift"}, repo.lastFilter)
}

func TestList_RejectsUnknownSortField(t *testing.T) {
	svc := NewService(&stubCarRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListCarsRequest{SortBy: "fuel"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&stubCarRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestCreate_Success(t *testing.T) {
	repo := &stubCarRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Swift", resp.Name)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.TransmissionManual, repo.created.Transmission)
	require.NotNil(t, repo.created.Price3Days)
	assert.Equal(t, 2000.0, *repo.created.Price3Days)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateCarRequest)
	}{
		{"empty name", func(r *models.CreateCarRequest) { r.Name = "  " }},
		{"empty brand", func(r *models.CreateCarRequest) { r.Brand = "" }},
		{"zero price", func(r *models.CreateCarRequest) { r.Price = 0 }},
		{"negative tier rate", func(r *models.CreateCarRequest) { r.Price3Days = ptr.Ptr(-1.0) }},
		{"unknown transmission", func(r *models.CreateCarRequest) { r.Transmission = "CVT" }},
		{"unknown fuel", func(r *models.CreateCarRequest) { r.Fuel = "Coal" }},
		{"negative km limit", func(r *models.CreateCarRequest) { r.KmLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubCarRepo{}
			svc := NewService(repo, nopLogger{})

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

func TestUpdate_SetsID(t *testing.T) {
	repo := &stubCarRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 7, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
}

func TestDelete_Success(t *testing.T) {
	repo := &stubCarRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.deletedID)
}
