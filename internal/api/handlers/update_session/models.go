package update_session

import (
	"fmt"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

// UpdateSessionRequest частичное обновление черновика
// Отсутствующие поля не затрагиваются. Идентификатор бронирования клиентом
// не выставляется - его записывает только подтверждение оплаты.
type UpdateSessionRequest struct {
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	PickupDate *string `json:"pickupDate,omitempty"`
	PickupTime *string `json:"pickupTime,omitempty"`
	DropDate   *string `json:"dropDate,omitempty"`
	DropTime   *string `json:"dropTime,omitempty"`

	PickupLocation *string `json:"pickupLocation,omitempty"`

	CarID    *int64  `json:"carId,omitempty"`
	CarName  *string `json:"carName,omitempty"`
	CarBrand *string `json:"carBrand,omitempty"`
	CarImage *string `json:"carImage,omitempty"`

	TotalDays  *int `json:"totalDays,omitempty"`
	ExtraHours *int `json:"extraHours,omitempty"`

	BasePrice   *float64 `json:"basePrice,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`

	DepositType   *string  `json:"depositType,omitempty"`
	DepositAmount *float64 `json:"depositAmount,omitempty"`
}

// ToDomainPatch валидирует и конвертирует запрос в domain патч
func (r *UpdateSessionRequest) ToDomainPatch() (domain.DraftPatch, error) {
	patch := domain.DraftPatch{
		CustomerName:  r.CustomerName,
		CarID:         r.CarID,
		CarName:       r.CarName,
		CarBrand:      r.CarBrand,
		CarImage:      r.CarImage,
		TotalDays:     r.TotalDays,
		ExtraHours:    r.ExtraHours,
		BasePrice:     r.BasePrice,
		TotalAmount:   r.TotalAmount,
		DepositAmount: r.DepositAmount,
	}

	if r.CustomerPhone != nil {
		phone := domain.NormalizePhone(*r.CustomerPhone)
		if !domain.IsValidPhone(phone) {
			return patch, fmt.Errorf("phone must be exactly %d digits", domain.PhoneDigits)
		}
		patch.CustomerPhone = ptr.Ptr(phone)
	}

	if r.PickupDate != nil {
		d, err := types.NewDateStringFromString(*r.PickupDate)
		if err != nil {
			return patch, err
		}
		patch.PickupDate = ptr.Ptr(d)
	}
	if r.DropDate != nil {
		d, err := types.NewDateStringFromString(*r.DropDate)
		if err != nil {
			return patch, err
		}
		patch.DropDate = ptr.Ptr(d)
	}
	if r.PickupTime != nil {
		t, err := types.NewTimeStringFromString(*r.PickupTime)
		if err != nil {
			return patch, err
		}
		patch.PickupTime = ptr.Ptr(t)
	}
	if r.DropTime != nil {
		t, err := types.NewTimeStringFromString(*r.DropTime)
		if err != nil {
			return patch, err
		}
		patch.DropTime = ptr.Ptr(t)
	}

	if r.PickupLocation != nil {
		if !domain.IsValidPickupLocation(*r.PickupLocation) {
			return patch, fmt.Errorf("unknown pickup location %q", *r.PickupLocation)
		}
		patch.PickupLocation = r.PickupLocation
	}

	if r.DepositType != nil {
		depositType := domain.DepositType(*r.DepositType)
		if !domain.IsValidDepositType(depositType) {
			return patch, fmt.Errorf("unknown deposit type %q", *r.DepositType)
		}
		patch.DepositType = ptr.Ptr(depositType)
	}

	return patch, nil
}
