package domain

import (
	"errors"
	"fmt"
)

// Step is one stage of the booking flow
// Normal flow is strictly forward: Intake -> Terms -> Checkout -> Confirmation
type Step string

const (
	StepIntake       Step = "intake"
	StepTerms        Step = "terms"
	StepCheckout     Step = "checkout"
	StepConfirmation Step = "confirmation"
)

// ErrUnknownStep is returned for a step name outside the flow
var ErrUnknownStep = errors.New("domain: unknown booking step")

// ParseStep validates a step name
func ParseStep(s string) (Step, error) {
	switch Step(s) {
	case StepIntake, StepTerms, StepCheckout, StepConfirmation:
		return Step(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}
}

// GuardStep resolves where a session trying to enter target actually lands.
// Each step checks its prerequisites on the draft and falls back to the
// earliest step whose prerequisites hold. Re-entering an earlier step is
// always allowed and never clears state.
func GuardStep(target Step, draft *BookingDraft, termsAccepted bool) Step {
	switch target {
	case StepTerms:
		if !draft.HasIntakeData() {
			return StepIntake
		}
		return StepTerms

	case StepCheckout:
		if !draft.HasIntakeData() {
			return StepIntake
		}
		if !termsAccepted {
			return StepTerms
		}
		return StepCheckout

	case StepConfirmation:
		if !draft.IsTerminal() {
			return StepIntake
		}
		return StepConfirmation

	default:
		return StepIntake
	}
}
