// Package services – VerificationService
//
// This file implements the VerificationService, which drives the email
// verification workflow before registration: issuing a one-time code,
// handing it to the notification gateway, and validating submissions.
// The code store itself lives in internal/otp; this service only
// coordinates issuance with delivery.
package services

import (
	"fmt"

	"github.com/pawpoint/go-vet-backend/internal/notify"
	"github.com/pawpoint/go-vet-backend/internal/otp"
)

// VerificationService issues and validates one-time email verification
// codes. It is safe for concurrent use.
type VerificationService struct {
	// Store holds pending codes keyed by email.
	Store *otp.Store
	// Mailer delivers issued codes to the recipient.
	Mailer notify.Mailer
}

// NewVerificationService wires a code store to a mailer.
func NewVerificationService(store *otp.Store, mailer notify.Mailer) *VerificationService {
	return &VerificationService{Store: store, Mailer: mailer}
}

// Issue generates a fresh code for email, replacing any pending one, and
// sends it through the mailer. A gateway failure is reported as
// ErrDeliveryFailed; the pending code is still recorded, so a later
// re-issue simply overwrites it.
func (s *VerificationService) Issue(email string) error {
	code, err := s.Store.Issue(email)
	if err != nil {
		return err
	}
	if err := s.Mailer.SendCode(email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// Validate checks a submitted code for email. It propagates the store's
// sentinel errors (otp.ErrCodeNotFound, otp.ErrCodeExpired,
// otp.ErrCodeMismatch); on success the code is consumed and cannot be
// used again.
func (s *VerificationService) Validate(email, code string) error {
	return s.Store.Validate(email, code)
}
