package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/pkg/types"
)

func TestComputeRentalPeriod_IncompleteInput(t *testing.T) {
	tests := []struct {
		name       string
		pickupDate types.DateString
		pickupTime types.TimeString
		dropDate   types.DateString
		dropTime   types.TimeString
	}{
		{"no pickup date", "", "10:00", "2024-06-03", "10:00"},
		{"no drop date", "2024-06-01", "10:00", "", "10:00"},
		{"no pickup time", "2024-06-01", "", "2024-06-03", "10:00"},
		{"nothing set", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ComputeRentalPeriod(tt.pickupDate, tt.pickupTime, tt.dropDate, tt.dropTime)
			require.NoError(t, err, "incomplete input must not be an error")
			assert.Nil(t, period, "incomplete input must not produce a period")
		})
	}
}

func TestComputeRentalPeriod_BelowMinimum(t *testing.T) {
	tests := []struct {
		name       string
		pickupDate types.DateString
		pickupTime types.TimeString
		dropDate   types.DateString
		dropTime   types.TimeString
	}{
		{"40 hours", "2024-06-01", "10:00", "2024-06-03", "02:00"},
		{"47h59m truncates to 47", "2024-06-01", "10:00", "2024-06-03", "09:59"},
		{"zero duration", "2024-06-01", "10:00", "2024-06-01", "10:00"},
		{"drop before pickup", "2024-06-03", "10:00", "2024-06-01", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ComputeRentalPeriod(tt.pickupDate, tt.pickupTime, tt.dropDate, tt.dropTime)
			require.ErrorIs(t, err, ErrMinimumDuration)
			assert.Nil(t, period)
		})
	}
}

func TestComputeRentalPeriod_Exactly48Hours(t *testing.T) {
	period, err := ComputeRentalPeriod("2024-06-01", "10:00", "2024-06-03", "10:00")

	require.NoError(t, err)
	require.NotNil(t, period)
	assert.Equal(t, 48, period.TotalHours)
	assert.Equal(t, 2, period.FullDays)
	assert.Equal(t, 0, period.ExtraHours)
}

func TestComputeRentalPeriod_DaysAndHours(t *testing.T) {
	period, err := ComputeRentalPeriod("2024-06-01", "10:00", "2024-06-04", "14:00")

	require.NoError(t, err)
	require.NotNil(t, period)
	assert.Equal(t, 76, period.TotalHours)
	assert.Equal(t, 3, period.FullDays)
	assert.Equal(t, 4, period.ExtraHours)
}

func TestComputeRentalPeriod_Invariants(t *testing.T) {
	drops := []struct {
		date types.DateString
		tod  types.TimeString
	}{
		{"2024-06-03", "10:00"},
		{"2024-06-03", "10:01"},
		{"2024-06-04", "09:59"},
		{"2024-06-10", "23:30"},
		{"2024-07-01", "00:15"},
	}

	for _, drop := range drops {
		period, err := ComputeRentalPeriod("2024-06-01", "10:00", drop.date, drop.tod)
		require.NoError(t, err)
		require.NotNil(t, period)

		assert.Equal(t, period.TotalHours, period.FullDays*HoursPerDay+period.ExtraHours)
		assert.GreaterOrEqual(t, period.ExtraHours, 0)
		assert.LessOrEqual(t, period.ExtraHours, 23)
		assert.GreaterOrEqual(t, period.FullDays, MinRentalDays)
	}
}

func TestComputeRentalPeriod_Idempotent(t *testing.T) {
	first, err := ComputeRentalPeriod("2024-06-01", "10:00", "2024-06-05", "18:30")
	require.NoError(t, err)

	second, err := ComputeRentalPeriod("2024-06-01", "10:00", "2024-06-05", "18:30")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeRentalPeriod_InvalidSchedule(t *testing.T) {
	period, err := ComputeRentalPeriod("not-a-date", "10:00", "2024-06-03", "10:00")

	require.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Nil(t, period)
}
