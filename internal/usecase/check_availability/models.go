package check_availability

import (
	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

// Request модель запроса проверки доступности автопарка
type Request struct {
	SessionID string

	CustomerName  string
	CustomerPhone string

	PickupDate types.DateString
	PickupTime types.TimeString
	DropDate   types.DateString
	DropTime   types.TimeString

	PickupLocation string
	Transmission   domain.TransmissionFilter
}

// CarOption автомобиль с рассчитанной стоимостью за запрошенный период
type CarOption struct {
	ID           int64
	Name         string
	Brand        string
	Category     string
	ImageURL     string
	Transmission domain.Transmission
	Fuel         domain.FuelType
	KmLimit      int

	PerDayRate float64
	TotalPrice float64
}

// Response модель ответа с рассчитанным периодом и доступными автомобилями
// Пустой список Cars - валидное состояние (ни один автомобиль не прошел фильтр)
type Response struct {
	TotalHours int
	FullDays   int
	ExtraHours int

	Cars []CarOption
}
