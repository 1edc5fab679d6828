package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentovia/SDC-RentalService/pkg/ptr"
)

func tieredCar() *Car {
	return &Car{
		ID:          1,
		Name:        "Swift",
		Brand:       "Maruti",
		Price:       2500,
		Price3Days:  ptr.Ptr(2200.0),
		Price7Days:  ptr.Ptr(2000.0),
		Price15Days: ptr.Ptr(1800.0),
	}
}

func TestPerDayRate_TierSelection(t *testing.T) {
	car := tieredCar()

	tests := []struct {
		fullDays int
		want     float64
	}{
		{0, 2500},
		{2, 2500},
		{3, 2200},
		{7, 2200},
		{8, 2000},
		{15, 2000},
		{16, 1800},
		{30, 1800},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PerDayRate(car, tt.fullDays), "fullDays=%d", tt.fullDays)
	}
}

func TestPerDayRate_UndefinedTierFallsThrough(t *testing.T) {
	// only the 7-day tier defined: 16+ days fall through to it,
	// 3-7 days fall through to the base rate
	car := &Car{Price: 2500, Price7Days: ptr.Ptr(2000.0)}

	assert.Equal(t, 2500.0, PerDayRate(car, 2))
	assert.Equal(t, 2500.0, PerDayRate(car, 5))
	assert.Equal(t, 2000.0, PerDayRate(car, 10))
	assert.Equal(t, 2000.0, PerDayRate(car, 20))
}

func TestPerDayRate_MonotonicAcrossTierBoundaries(t *testing.T) {
	car := tieredCar()

	prev := PerDayRate(car, 1)
	for days := 2; days <= 40; days++ {
		rate := PerDayRate(car, days)
		assert.LessOrEqual(t, rate, prev, "rate must not increase at fullDays=%d", days)
		prev = rate
	}
}

func TestTotalPrice_FullDaysOnly(t *testing.T) {
	car := &Car{Price: 2500}

	assert.Equal(t, 5000.0, TotalPrice(car, 2, 0))
}

func TestTotalPrice_RoundsPartialDayComponent(t *testing.T) {
	car := tieredCar()

	// 3 days at the 3-day tier plus 4 hours at 2200/24 per hour
	assert.Equal(t, 3*2200+367.0, TotalPrice(car, 3, 4))
}

func TestTotalPrice_ZeroDaysDefensive(t *testing.T) {
	car := &Car{Price: 2400}

	// never produced by the duration calculator, but must not misbehave
	assert.Equal(t, 0.0, TotalPrice(car, 0, 0))
	assert.Equal(t, 300.0, TotalPrice(car, 0, 3))
}
