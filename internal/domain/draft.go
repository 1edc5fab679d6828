package domain

import "github.com/rentovia/SDC-RentalService/pkg/types"

// DepositType how the customer secures the remaining amount at pickup
type DepositType string

const (
	DepositCash DepositType = "cash"
	DepositBike DepositType = "bike"
	DepositNone DepositType = "none"
)

// IsValidDepositType returns true for a known deposit value
func IsValidDepositType(d DepositType) bool {
	return d == DepositCash || d == DepositBike || d == DepositNone
}

// BookingDraft is the single in-progress booking of one customer session
// It is populated incrementally by the booking steps and becomes terminal
// once BookingID is set after a successful payment
type BookingDraft struct {
	CustomerName  string
	CustomerPhone string

	PickupDate types.DateString
	PickupTime types.TimeString
	DropDate   types.DateString
	DropTime   types.TimeString

	PickupLocation string

	CarID    *int64
	CarName  string
	CarBrand string
	CarImage string

	TotalDays  int
	ExtraHours int

	BasePrice   float64
	TotalAmount float64

	DepositType   DepositType
	DepositAmount float64

	// BookingID is nil until payment succeeds; once set the draft is
	// terminal and eligible for reset
	BookingID *string
}

// HasIntakeData returns true once the customer is identified and a pickup
// date is chosen - the prerequisite for every step past Intake
func (d *BookingDraft) HasIntakeData() bool {
	return d.CustomerName != "" && !d.PickupDate.IsZero()
}

// HasSelectedCar returns true once a car has been chosen from availability
func (d *BookingDraft) HasSelectedCar() bool {
	return d.CarID != nil
}

// IsTerminal returns true once payment has succeeded
func (d *BookingDraft) IsTerminal() bool {
	return d.BookingID != nil
}

// DraftPatch is a partial update of a BookingDraft
// Nil fields are left untouched; non-nil fields overwrite
type DraftPatch struct {
	CustomerName  *string
	CustomerPhone *string

	PickupDate *types.DateString
	PickupTime *types.TimeString
	DropDate   *types.DateString
	DropTime   *types.TimeString

	PickupLocation *string

	CarID    *int64
	CarName  *string
	CarBrand *string
	CarImage *string

	TotalDays  *int
	ExtraHours *int

	BasePrice   *float64
	TotalAmount *float64

	DepositType   *DepositType
	DepositAmount *float64

	BookingID *string
}

// Apply shallow-merges the patch into the draft
func (p *DraftPatch) Apply(d *BookingDraft) {
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		d.CustomerPhone = *p.CustomerPhone
	}
	if p.PickupDate != nil {
		d.PickupDate = *p.PickupDate
	}
	if p.PickupTime != nil {
		d.PickupTime = *p.PickupTime
	}
	if p.DropDate != nil {
		d.DropDate = *p.DropDate
	}
	if p.DropTime != nil {
		d.DropTime = *p.DropTime
	}
	if p.PickupLocation != nil {
		d.PickupLocation = *p.PickupLocation
	}
	if p.CarID != nil {
		d.CarID = p.CarID
	}
	if p.CarName != nil {
		d.CarName = *p.CarName
	}
	if p.CarBrand != nil {
		d.CarBrand = *p.CarBrand
	}
	if p.CarImage != nil {
		d.CarImage = *p.CarImage
	}
	if p.TotalDays != nil {
		d.TotalDays = *p.TotalDays
	}
	if p.ExtraHours != nil {
		d.ExtraHours = *p.ExtraHours
	}
	if p.BasePrice != nil {
		d.BasePrice = *p.BasePrice
	}
	if p.TotalAmount != nil {
		d.TotalAmount = *p.TotalAmount
	}
	if p.DepositType != nil {
		d.DepositType = *p.DepositType
	}
	if p.DepositAmount != nil {
		d.DepositAmount = *p.DepositAmount
	}
	if p.BookingID != nil {
		d.BookingID = p.BookingID
	}
}
