package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentovia/SDC-RentalService/pkg/ptr"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

func TestDraftPatch_ApplyMergesWithoutDroppingFields(t *testing.T) {
	draft := BookingDraft{}

	first := DraftPatch{
		CustomerName: ptr.Ptr("Anita"),
		PickupDate:   ptr.Ptr(types.DateString("2024-06-01")),
	}
	first.Apply(&draft)

	second := DraftPatch{
		CustomerPhone: ptr.Ptr("9876543210"),
		PickupDate:    ptr.Ptr(types.DateString("2024-06-02")),
	}
	second.Apply(&draft)

	assert.Equal(t, "Anita", draft.CustomerName, "untouched field survives later patches")
	assert.Equal(t, "9876543210", draft.CustomerPhone)
	assert.Equal(t, types.DateString("2024-06-02"), draft.PickupDate, "later patch wins on overlap")
}

func TestDraftPatch_CarSelection(t *testing.T) {
	draft := BookingDraft{}

	patch := DraftPatch{
		CarID:       ptr.Ptr(int64(7)),
		CarName:     ptr.Ptr("Creta"),
		CarBrand:    ptr.Ptr("Hyundai"),
		BasePrice:   ptr.Ptr(3200.0),
		TotalAmount: ptr.Ptr(9600.0),
	}
	patch.Apply(&draft)

	assert.True(t, draft.HasSelectedCar())
	assert.Equal(t, "Creta", draft.CarName)
}

func TestIsValidPickupLocation(t *testing.T) {
	assert.True(t, IsValidPickupLocation(""))
	assert.True(t, IsValidPickupLocation("Airport"))
	assert.False(t, IsValidPickupLocation("Somewhere Else"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizePhone("98765 43210"))
	assert.Equal(t, "9876543210", NormalizePhone("98-76-54-32-10"))
	assert.True(t, IsValidPhone("9876543210"))
	assert.False(t, IsValidPhone("987654321"))
	assert.False(t, IsValidPhone("98765432100"))
	assert.False(t, IsValidPhone("98765abc10"))
}
