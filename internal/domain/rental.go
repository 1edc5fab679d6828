package domain

import (
	"errors"
	"fmt"

	"github.com/rentovia/SDC-RentalService/pkg/types"
)

var (
	// ErrMinimumDuration is returned when the requested rental is shorter
	// than the 48-hour minimum
	ErrMinimumDuration = errors.New("domain: rental duration below 48 hours")

	// ErrInvalidSchedule is returned when a date or time string cannot be parsed
	ErrInvalidSchedule = errors.New("domain: invalid rental schedule")
)

// RentalPeriod is the billable duration of a rental
// Invariant: FullDays*24 + ExtraHours == TotalHours, 0 <= ExtraHours <= 23,
// FullDays >= 2 (the calculator never produces a shorter period)
type RentalPeriod struct {
	TotalHours int
	FullDays   int
	ExtraHours int
}

// ComputeRentalPeriod derives the billable duration from a pickup/drop
// date-time pair. Pure: the same four strings always give the same result.
//
// Returns (nil, nil) while the input is incomplete (a date or time not yet
// chosen) - callers show a prompt, not an error. A complete pair shorter
// than 48 hours fails with ErrMinimumDuration.
//
// Hours are truncated, not rounded: a trip of 47h59m counts as 47 hours.
func ComputeRentalPeriod(pickupDate types.DateString, pickupTime types.TimeString, dropDate types.DateString, dropTime types.TimeString) (*RentalPeriod, error) {
	if pickupDate.IsZero() || dropDate.IsZero() || pickupTime.IsZero() || dropTime.IsZero() {
		return nil, nil
	}

	pickup, err := types.CombineDateTime(pickupDate, pickupTime)
	if err != nil {
		return nil, fmt.Errorf("%w: pickup: %v", ErrInvalidSchedule, err)
	}

	drop, err := types.CombineDateTime(dropDate, dropTime)
	if err != nil {
		return nil, fmt.Errorf("%w: drop: %v", ErrInvalidSchedule, err)
	}

	totalHours := int(drop.Sub(pickup).Hours())
	if totalHours < MinRentalHours {
		return nil, ErrMinimumDuration
	}

	return &RentalPeriod{
		TotalHours: totalHours,
		FullDays:   totalHours / HoursPerDay,
		ExtraHours: totalHours % HoursPerDay,
	}, nil
}
