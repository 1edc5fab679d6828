package domain

import "time"

// Booking is a confirmed rental, persisted once the payment gateway
// reports success. Car and schedule data are denormalized so the record
// stays complete even if the fleet changes later.
type Booking struct {
	ID         int64
	BookingRef string // opaque identifier shown to the customer

	CustomerName  string
	CustomerPhone string

	CarID    int64
	CarName  string
	CarBrand string

	PickupAt       time.Time
	DropAt         time.Time
	PickupLocation *string

	TotalDays  int
	ExtraHours int

	BasePrice   float64
	TotalAmount float64

	// AdvanceAmount is the flat amount charged online; the remaining trip
	// cost and the deposit are settled at physical pickup
	AdvanceAmount float64
	DepositType   DepositType
	DepositAmount float64

	PaymentRef string // gateway's opaque payment reference

	CreatedAt time.Time
}
