package check_availability

import (
	"github.com/rentovia/SDC-RentalService/internal/domain"
	checkAvailability "github.com/rentovia/SDC-RentalService/internal/usecase/check_availability"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	PickupDate string `json:"pickupDate"` // "2025-10-15"
	PickupTime string `json:"pickupTime"` // "10:00"
	DropDate   string `json:"dropDate"`
	DropTime   string `json:"dropTime"`

	PickupLocation string `json:"pickupLocation,omitempty"`
	Transmission   string `json:"transmission,omitempty"` // All | Manual | Automatic
}

// CarOptionResponse автомобиль с рассчитанной стоимостью
type CarOptionResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Transmission string  `json:"transmission"`
	Fuel         string  `json:"fuel"`
	KmLimit      int     `json:"kmLimit"`
	PerDayRate   float64 `json:"perDayRate"`
	TotalPrice   float64 `json:"totalPrice"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	TotalHours int                 `json:"totalHours"`
	FullDays   int                 `json:"fullDays"`
	ExtraHours int                 `json:"extraHours"`
	Cars       []CarOptionResponse `json:"cars"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest(sessionID string) (*checkAvailability.Request, error) {
	pickupDate, err := types.NewDateStringFromString(r.PickupDate)
	if err != nil {
		return nil, err
	}
	dropDate, err := types.NewDateStringFromString(r.DropDate)
	if err != nil {
		return nil, err
	}
	pickupTime, err := types.NewTimeStringFromString(r.PickupTime)
	if err != nil {
		return nil, err
	}
	dropTime, err := types.NewTimeStringFromString(r.DropTime)
	if err != nil {
		return nil, err
	}

	transmission := domain.TransmissionFilter(r.Transmission)
	if r.Transmission == "" {
		transmission = domain.FilterAll
	}

	return &checkAvailability.Request{
		SessionID:      sessionID,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		PickupDate:     pickupDate,
		PickupTime:     pickupTime,
		DropDate:       dropDate,
		DropTime:       dropTime,
		PickupLocation: r.PickupLocation,
		Transmission:   transmission,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	cars := make([]CarOptionResponse, 0, len(resp.Cars))
	for _, car := range resp.Cars {
		cars = append(cars, CarOptionResponse{
			ID:           car.ID,
			Name:         car.Name,
			Brand:        car.Brand,
			Category:     car.Category,
			ImageURL:     car.ImageURL,
			Transmission: string(car.Transmission),
			Fuel:         string(car.Fuel),
			KmLimit:      car.KmLimit,
			PerDayRate:   car.PerDayRate,
			TotalPrice:   car.TotalPrice,
		})
	}

	return &CheckAvailabilityResponse{
		TotalHours: resp.TotalHours,
		FullDays:   resp.FullDays,
		ExtraHours: resp.ExtraHours,
		Cars:       cars,
	}
}
