package handlers

import "github.com/rentovia/SDC-RentalService/internal/domain"

// DraftResponse черновик бронирования сессии
// Общая модель ответа для всех session-эндпоинтов
type DraftResponse struct {
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	PickupDate string `json:"pickupDate,omitempty"`
	PickupTime string `json:"pickupTime,omitempty"`
	DropDate   string `json:"dropDate,omitempty"`
	DropTime   string `json:"dropTime,omitempty"`

	PickupLocation string `json:"pickupLocation,omitempty"`

	CarID    *int64 `json:"carId,omitempty"`
	CarName  string `json:"carName,omitempty"`
	CarBrand string `json:"carBrand,omitempty"`
	CarImage string `json:"carImage,omitempty"`

	TotalDays  int `json:"totalDays"`
	ExtraHours int `json:"extraHours"`

	BasePrice   float64 `json:"basePrice"`
	TotalAmount float64 `json:"totalAmount"`

	DepositType   string  `json:"depositType,omitempty"`
	DepositAmount float64 `json:"depositAmount"`

	BookingID *string `json:"bookingId,omitempty"`

	TermsAccepted bool `json:"termsAccepted"`
}

// FromDomainDraft конвертирует черновик в модель ответа
func FromDomainDraft(draft domain.BookingDraft, termsAccepted bool) *DraftResponse {
	return &DraftResponse{
		CustomerName:   draft.CustomerName,
		CustomerPhone:  draft.CustomerPhone,
		PickupDate:     draft.PickupDate.String(),
		PickupTime:     draft.PickupTime.String(),
		DropDate:       draft.DropDate.String(),
		DropTime:       draft.DropTime.String(),
		PickupLocation: draft.PickupLocation,
		CarID:          draft.CarID,
		CarName:        draft.CarName,
		CarBrand:       draft.CarBrand,
		CarImage:       draft.CarImage,
		TotalDays:      draft.TotalDays,
		ExtraHours:     draft.ExtraHours,
		BasePrice:      draft.BasePrice,
		TotalAmount:    draft.TotalAmount,
		DepositType:    string(draft.DepositType),
		DepositAmount:  draft.DepositAmount,
		BookingID:      draft.BookingID,
		TermsAccepted:  termsAccepted,
	}
}
