package service

import (
	"context"
	"errors"
	"time"

	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/logger"
	"github.com/faseops/membership/scheduled-tasks/mailer"
	"github.com/faseops/membership/scheduled-tasks/registration/dal"
	"github.com/faseops/membership/scheduled-tasks/registration/domain"
)

// RegistrationService owns the legal transitions of a registration's payment
// and check-in state.
type RegistrationService struct {
	loggerProvider logger.Provider
	*connection.Connection
	registrationsDAL dal.Registrations
	sender           mailer.ISender
}

func NewRegistrationService(loggerProvider logger.Provider, conn *connection.Connection) *RegistrationService {
	return &RegistrationService{
		loggerProvider,
		conn,
		dal.NewRegistrationsFirestoreWithClient(conn.Firestore),
		mailer.NewSender(),
	}
}

// NewRegistrationServiceWithDeps is used by tests to substitute fakes.
func NewRegistrationServiceWithDeps(loggerProvider logger.Provider, registrationsDAL dal.Registrations, sender mailer.ISender) *RegistrationService {
	return &RegistrationService{
		loggerProvider:   loggerProvider,
		registrationsDAL: registrationsDAL,
		sender:           sender,
	}
}

type UpdateStatusInput struct {
	RegistrationID string `json:"registrationId"`
	Status         string `json:"status"`
}

type DeleteInput struct {
	RegistrationID     string `json:"registrationId"`
	ConfirmationPhrase string `json:"confirmationPhrase"`
	InvoiceNumber      string `json:"invoiceNumber"`
}

// deleteConfirmationPhrase must be supplied verbatim before a registration is
// hard-deleted.
const deleteConfirmationPhrase = "DELETE"

// UpdateStatus advances the payment status of a registration. The coarse
// status field is derived from the new payment status, and confirmedAt is
// stamped only when the registration transitions into confirmed.
func (s *RegistrationService) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Registration, error) {
	l := s.loggerProvider(ctx)

	newStatus := domain.PaymentStatus(input.Status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	registration, err := s.registrationsDAL.GetByRegistrationID(ctx, input.RegistrationID)
	if err != nil {
		if errors.Is(err, dal.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}

		return nil, err
	}

	if err := fireTransition(registration.PaymentStatus, newStatus); err != nil {
		return nil, err
	}

	coarseStatus := domain.DeriveStatus(newStatus)

	var confirmedAt *time.Time

	if newStatus == domain.PaymentStatusConfirmed && registration.PaymentStatus != domain.PaymentStatusConfirmed {
		now := time.Now().UTC()
		confirmedAt = &now
	}

	if err := s.registrationsDAL.SetPaymentStatus(ctx, registration.ID, newStatus, coarseStatus, confirmedAt); err != nil {
		return nil, err
	}

	l.SetLabel(logger.LabelRegistrationID, registration.RegistrationID)
	l.Infof("registration %s payment status %s -> %s", registration.RegistrationID, registration.PaymentStatus, newStatus)

	registration.PaymentStatus = newStatus
	registration.Status = coarseStatus

	if confirmedAt != nil {
		registration.ConfirmedAt = confirmedAt

		s.notifyConfirmed(ctx, registration)
	}

	return registration, nil
}

// notifyConfirmed emails the first attendee once the registration reaches
// confirmed. Delivery failures do not fail the transition.
func (s *RegistrationService) notifyConfirmed(ctx context.Context, registration *domain.Registration) {
	l := s.loggerProvider(ctx)

	attendee := registration.FirstAttendee()
	if attendee == nil || attendee.Email == "" {
		return
	}

	if err := s.sender.SendRegistrationConfirmed(&mailer.RegistrationConfirmedNotification{
		Email:            attendee.Email,
		FirstName:        attendee.FirstName,
		OrganizationName: registration.BillingInfo.Company,
		RegistrationID:   registration.RegistrationID,
		AttendeeCount:    len(registration.Attendees),
	}); err != nil {
		l.Warningf("failed to send confirmation for registration %s: %s", registration.RegistrationID, err)
	}
}

// CheckIn marks the registration's attendees as arrived. The operation is
// idempotent: a repeated call returns the same attendee snapshot without
// mutating the stored document.
func (s *RegistrationService) CheckIn(ctx context.Context, registrationID string) (*domain.CheckInResult, error) {
	l := s.loggerProvider(ctx)

	registration, err := s.resolve(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	registration, alreadyCheckedIn, err := s.registrationsDAL.CheckIn(ctx, registration.ID)
	if err != nil {
		switch {
		case errors.Is(err, dal.ErrRegistrationNotFound):
			return nil, ErrRegistrationNotFound
		case errors.Is(err, dal.ErrNotEligibleForCheckIn):
			return nil, ErrNotEligibleForCheckIn
		}

		return nil, err
	}

	if alreadyCheckedIn {
		l.Infof("registration %s already checked in at %s", registration.RegistrationID, registration.CheckedInAt)
	} else {
		l.Infof("registration %s checked in with %d attendees", registration.RegistrationID, registration.CheckedInCount)
	}

	return &domain.CheckInResult{
		RegistrationID:   registration.RegistrationID,
		Attendee:         registration.FirstAttendee(),
		AttendeeCount:    len(registration.Attendees),
		CheckedInAt:      registration.CheckedInAt,
		AlreadyCheckedIn: alreadyCheckedIn,
	}, nil
}

// Delete hard-deletes a registration. The caller must supply the literal
// confirmation phrase, and when an invoice number is provided it must match
// the stored one. Irreversible.
func (s *RegistrationService) Delete(ctx context.Context, input DeleteInput) error {
	l := s.loggerProvider(ctx)

	if input.ConfirmationPhrase != deleteConfirmationPhrase {
		return ErrDeleteNotConfirmed
	}

	registration, err := s.registrationsDAL.GetByRegistrationID(ctx, input.RegistrationID)
	if err != nil {
		if errors.Is(err, dal.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}

		return err
	}

	if err := s.registrationsDAL.Delete(ctx, registration.ID, input.InvoiceNumber); err != nil {
		switch {
		case errors.Is(err, dal.ErrRegistrationNotFound):
			return ErrRegistrationNotFound
		case errors.Is(err, dal.ErrInvoiceNumberMismatch):
			return ErrInvoiceNumberMismatch
		}

		return err
	}

	l.Warningf("registration %s deleted (invoice %s)", input.RegistrationID, registration.InvoiceNumber)

	return nil
}

// resolve looks a registration up by business key first, falling back to the
// firestore document id.
func (s *RegistrationService) resolve(ctx context.Context, registrationID string) (*domain.Registration, error) {
	registration, err := s.registrationsDAL.GetByRegistrationID(ctx, registrationID)
	if err == nil {
		return registration, nil
	}

	if !errors.Is(err, dal.ErrRegistrationNotFound) {
		return nil, err
	}

	registration, err = s.registrationsDAL.GetByDocID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, dal.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}

		return nil, err
	}

	return registration, nil
}
