package domain

import "time"

// Transmission gearbox type of a car
type Transmission string

const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
	// TransmissionBoth marks cars offered with either gearbox,
	// such cars match any transmission filter
	TransmissionBoth Transmission = "Manual/Automatic"
)

// TransmissionFilter availability filter over the fleet
type TransmissionFilter string

const (
	FilterAll       TransmissionFilter = "All"
	FilterManual    TransmissionFilter = "Manual"
	FilterAutomatic TransmissionFilter = "Automatic"
)

// IsValidTransmission returns true for a known car transmission value
func IsValidTransmission(t Transmission) bool {
	return t == TransmissionManual || t == TransmissionAutomatic || t == TransmissionBoth
}

// IsValidTransmissionFilter returns true for a known filter value
func IsValidTransmissionFilter(f TransmissionFilter) bool {
	return f == FilterAll || f == FilterManual || f == FilterAutomatic
}

// FuelType fuel of a car
type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
)

// IsValidFuelType returns true for a known fuel value
func IsValidFuelType(f FuelType) bool {
	return f == FuelPetrol || f == FuelDiesel || f == FuelElectric
}

// Car is a fleet vehicle with tiered per-day pricing
// Price is the 1-2 day rate; the longer tiers are optional and fall through
// to the next lower tier when undefined
type Car struct {
	ID          int64
	Name        string
	Brand       string
	Category    string
	Price       float64
	Price3Days  *float64
	Price7Days  *float64
	Price15Days *float64

	Transmission Transmission
	Fuel         FuelType
	KmLimit      int
	ImageURL     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MatchesTransmission returns true if the car passes the given filter
// Cars offered with both gearboxes pass every filter
func (c *Car) MatchesTransmission(filter TransmissionFilter) bool {
	if filter == FilterAll {
		return true
	}
	if c.Transmission == TransmissionBoth {
		return true
	}
	return string(c.Transmission) == string(filter)
}

// CarFilter catalog browse parameters
// Search matches name, brand and category case-insensitively
type CarFilter struct {
	SortBy string // "price" or "name", empty means price
	Order  string // "asc" or "desc", empty means asc
	Search string
}
