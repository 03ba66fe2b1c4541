package service

import (
	"github.com/qmuntal/stateless"

	"github.com/faseops/membership/scheduled-tasks/registration/domain"
)

// Payment status transition triggers.
const (
	triggerMarkPaid = "mark_paid"
	triggerConfirm  = "confirm"
	triggerReaffirm = "reaffirm"

	invalidTrigger = "invalid"
)

// fireTransition validates a payment status transition against the lifecycle
// machine: pending_bank_transfer may advance to paid or confirmed, paid may
// advance to confirmed, and no state transitions back to pending.
func fireTransition(from, to domain.PaymentStatus) error {
	machine := stateless.NewStateMachine(from)

	machine.Configure(domain.PaymentStatusPendingBankTransfer).
		Permit(triggerMarkPaid, domain.PaymentStatusPaid).
		Permit(triggerConfirm, domain.PaymentStatusConfirmed).
		PermitReentry(triggerReaffirm)

	machine.Configure(domain.PaymentStatusPaid).
		Permit(triggerConfirm, domain.PaymentStatusConfirmed).
		PermitReentry(triggerReaffirm)

	machine.Configure(domain.PaymentStatusConfirmed).
		PermitReentry(triggerReaffirm)

	if err := machine.Fire(defineTrigger(from, to)); err != nil {
		return ErrIllegalTransition
	}

	return nil
}

func defineTrigger(from, to domain.PaymentStatus) string {
	if from == to {
		return triggerReaffirm
	}

	switch to {
	case domain.PaymentStatusPaid:
		return triggerMarkPaid
	case domain.PaymentStatusConfirmed:
		return triggerConfirm
	}

	return invalidTrigger
}
