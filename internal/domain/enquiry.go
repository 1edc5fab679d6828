package domain

import (
	"regexp"
	"strings"
	"time"
)

// EnquiryStatus triage status of a booking enquiry
type EnquiryStatus string

const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusClosed    EnquiryStatus = "closed"
)

// IsValidEnquiryStatus returns true for a known enquiry status
func IsValidEnquiryStatus(s EnquiryStatus) bool {
	return s == EnquiryStatusNew || s == EnquiryStatusContacted || s == EnquiryStatusClosed
}

// Enquiry is a booking enquiry recorded when a customer checks availability
// Written fire-and-forget; the admin area triages these records
type Enquiry struct {
	ID            int64
	CustomerName  string
	CustomerPhone string

	PickupAt       time.Time
	DropAt         time.Time
	PickupLocation *string

	TotalDays    int
	ExtraHours   int
	Transmission TransmissionFilter

	Status EnquiryStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// NormalizePhone strips everything but digits from a phone number
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone returns true for exactly 10 ASCII digits
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
