package domain

// Rental duration rules
const (
	HoursPerDay    = 24
	MinRentalHours = 48 // minimum billable rental is 2 full days
	MinRentalDays  = MinRentalHours / HoursPerDay
)

// MinimumDurationMessage user-facing message for rentals below the minimum
const MinimumDurationMessage = "Minimum rental period is 2 days (48 hours)"

// Customer validation rules
const (
	MinCustomerNameLength = 2
	PhoneDigits           = 10
)

// Enquiry rate limiting: reject when the same phone produced more than
// this many enquiries within the trailing hour
const MaxEnquiriesPerPhonePerHour = 5

// Car validation limits
const (
	MaxCarNameLength  = 100
	MaxCarBrandLength = 50
	MaxLocationLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PickupLocations enumerated set of pickup points offered by the rental desk
// An empty location on a draft means "to be decided at contact"
var PickupLocations = []string{
	"City Center",
	"Railway Station",
	"Airport",
	"Tech Park",
	"North Depot",
}

// IsValidPickupLocation returns true for an empty value or a known location
func IsValidPickupLocation(location string) bool {
	if location == "" {
		return true
	}
	for _, l := range PickupLocations {
		if l == location {
			return true
		}
	}
	return false
}
