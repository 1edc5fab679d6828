package check_availability

import (
	"fmt"
	"strings"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Телефон к этому моменту уже нормализован (оставлены только цифры)
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.CustomerName)) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: customer name must be at least %d characters", ErrInvalidInput, domain.MinCustomerNameLength)
	}

	if !domain.IsValidPhone(req.CustomerPhone) {
		return fmt.Errorf("%w: phone must be exactly %d digits", ErrInvalidInput, domain.PhoneDigits)
	}

	if !domain.IsValidPickupLocation(req.PickupLocation) {
		return fmt.Errorf("%w: unknown pickup location %q", ErrInvalidInput, req.PickupLocation)
	}

	if !domain.IsValidTransmissionFilter(req.Transmission) {
		return fmt.Errorf("%w: unknown transmission filter %q", ErrInvalidInput, req.Transmission)
	}

	// Проверка доступности - точка отправки формы: расписание обязано быть полным
	if req.PickupDate.IsZero() || req.PickupTime.IsZero() || req.DropDate.IsZero() || req.DropTime.IsZero() {
		return ErrIncompleteSchedule
	}

	return nil
}

// buildCarOptions фильтрует автопарк по коробке передач и считает стоимость
// каждого оставшегося автомобиля за период
// Порядок входного списка (по возрастанию базовой цены) сохраняется
func buildCarOptions(cars []*domain.Car, period *domain.RentalPeriod, filter domain.TransmissionFilter) []CarOption {
	options := make([]CarOption, 0, len(cars))

	for _, car := range cars {
		if !car.MatchesTransmission(filter) {
			continue
		}

		options = append(options, CarOption{
			ID:           car.ID,
			Name:         car.Name,
			Brand:        car.Brand,
			Category:     car.Category,
			ImageURL:     car.ImageURL,
			Transmission: car.Transmission,
			Fuel:         car.Fuel,
			KmLimit:      car.KmLimit,
			PerDayRate:   domain.PerDayRate(car, period.FullDays),
			TotalPrice:   domain.TotalPrice(car, period.FullDays, period.ExtraHours),
		})
	}

	return options
}
