package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/pkg/ptr"
)

func intakeDraft() *BookingDraft {
	return &BookingDraft{
		CustomerName:  "Anita",
		CustomerPhone: "9876543210",
		PickupDate:    "2024-06-01",
		PickupTime:    "10:00",
		DropDate:      "2024-06-03",
		DropTime:      "10:00",
	}
}

func TestGuardStep_Terms(t *testing.T) {
	assert.Equal(t, StepIntake, GuardStep(StepTerms, &BookingDraft{}, false))
	assert.Equal(t, StepIntake, GuardStep(StepTerms, &BookingDraft{CustomerName: "Anita"}, false))
	assert.Equal(t, StepTerms, GuardStep(StepTerms, intakeDraft(), false))
}

func TestGuardStep_Checkout(t *testing.T) {
	// no intake data at all: back to the start, not to terms
	assert.Equal(t, StepIntake, GuardStep(StepCheckout, &BookingDraft{}, true))

	// intake done but terms not accepted: always lands on terms
	assert.Equal(t, StepTerms, GuardStep(StepCheckout, intakeDraft(), false))

	assert.Equal(t, StepCheckout, GuardStep(StepCheckout, intakeDraft(), true))
}

func TestGuardStep_Confirmation(t *testing.T) {
	assert.Equal(t, StepIntake, GuardStep(StepConfirmation, intakeDraft(), true))

	terminal := intakeDraft()
	terminal.BookingID = ptr.Ptr("BK-1718000000000-a1b2c3d4")
	assert.Equal(t, StepConfirmation, GuardStep(StepConfirmation, terminal, true))
}

func TestGuardStep_BackwardNavigationKeepsState(t *testing.T) {
	draft := intakeDraft()

	// entering terms again after checkout re-runs its guard on the same draft
	assert.Equal(t, StepTerms, GuardStep(StepTerms, draft, true))
	assert.Equal(t, "Anita", draft.CustomerName)
}

func TestParseStep(t *testing.T) {
	step, err := ParseStep("checkout")
	require.NoError(t, err)
	assert.Equal(t, StepCheckout, step)

	_, err = ParseStep("payment")
	require.ErrorIs(t, err, ErrUnknownStep)
}
