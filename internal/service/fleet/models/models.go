package models

import (
	"time"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// Request модели

// ListCarsRequest параметры просмотра каталога
type ListCarsRequest struct {
	SortBy string `json:"sortBy,omitempty"` // price | name
	Order  string `json:"order,omitempty"`  // asc | desc
	Search string `json:"search,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListCarsRequest) ToDomainFilter() domain.CarFilter {
	return domain.CarFilter{
		SortBy: r.SortBy,
		Order:  r.Order,
		Search: r.Search,
	}
}

// CreateCarRequest запрос на добавление автомобиля в автопарк
type CreateCarRequest struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price"`
	Price3Days  *float64 `json:"price3Days,omitempty"`
	Price7Days  *float64 `json:"price7Days,omitempty"`
	Price15Days *float64 `json:"price15Days,omitempty"`

	Transmission string `json:"transmission"`
	Fuel         string `json:"fuel"`
	KmLimit      int    `json:"kmLimit"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// ToDomainCar конвертирует request в domain модель
func (r *CreateCarRequest) ToDomainCar() *domain.Car {
	return &domain.Car{
		Name:         r.Name,
		Brand:        r.Brand,
		Category:     r.Category,
		Price:        r.Price,
		Price3Days:   r.Price3Days,
		Price7Days:   r.Price7Days,
		Price15Days:  r.Price15Days,
		Transmission: domain.Transmission(r.Transmission),
		Fuel:         domain.FuelType(r.Fuel),
		KmLimit:      r.KmLimit,
		ImageURL:     r.ImageURL,
	}
}

// UpdateCarRequest запрос на полное обновление автомобиля
type UpdateCarRequest = CreateCarRequest

// Response модели

// CarResponse автомобиль автопарка
type CarResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price"`
	Price3Days  *float64 `json:"price3Days,omitempty"`
	Price7Days  *float64 `json:"price7Days,omitempty"`
	Price15Days *float64 `json:"price15Days,omitempty"`

	Transmission string `json:"transmission"`
	Fuel         string `json:"fuel"`
	KmLimit      int    `json:"kmLimit"`
	ImageURL     string `json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CarListResponse список автомобилей
type CarListResponse struct {
	Cars []CarResponse `json:"cars"`
}

// FromDomainCar конвертирует domain модель в response
func FromDomainCar(car *domain.Car) *CarResponse {
	return &CarResponse{
		ID:           car.ID,
		Name:         car.Name,
		Brand:        car.Brand,
		Category:     car.Category,
		Price:        car.Price,
		Price3Days:   car.Price3Days,
		Price7Days:   car.Price7Days,
		Price15Days:  car.Price15Days,
		Transmission: string(car.Transmission),
		Fuel:         string(car.Fuel),
		KmLimit:      car.KmLimit,
		ImageURL:     car.ImageURL,
		CreatedAt:    car.CreatedAt,
		UpdatedAt:    car.UpdatedAt,
	}
}

// FromDomainCarList конвертирует список domain моделей в response
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	resp := &CarListResponse{
		Cars: make([]CarResponse, 0, len(cars)),
	}
	for _, car := range cars {
		resp.Cars = append(resp.Cars, *FromDomainCar(car))
	}
	return resp
}
