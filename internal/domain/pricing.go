package domain

import "math"

// priceTier binds a minimum number of full days to the car field holding
// that tier's per-day rate. Tiers are evaluated highest threshold first;
// an undefined rate falls through to the next lower tier or the base price.
type priceTier struct {
	minDays int
	rate    func(c *Car) *float64
}

var priceTiers = []priceTier{
	{minDays: 16, rate: func(c *Car) *float64 { return c.Price15Days }},
	{minDays: 8, rate: func(c *Car) *float64 { return c.Price7Days }},
	{minDays: 3, rate: func(c *Car) *float64 { return c.Price3Days }},
}

// PerDayRate selects the per-day rate for a rental of fullDays days
// The base price covers 1-2 days and any tier with an undefined rate
func PerDayRate(car *Car, fullDays int) float64 {
	for _, tier := range priceTiers {
		if fullDays >= tier.minDays {
			if rate := tier.rate(car); rate != nil {
				return *rate
			}
		}
	}
	return car.Price
}

// TotalPrice prices a rental of fullDays full days plus extraHours hours
// The hourly rate is always the per-day rate divided by 24; only the
// partial-day component is rounded
func TotalPrice(car *Car, fullDays, extraHours int) float64 {
	perDay := PerDayRate(car, fullDays)
	hourly := perDay / HoursPerDay
	return float64(fullDays)*perDay + math.Round(float64(extraHours)*hourly)
}
