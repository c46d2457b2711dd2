// Package services – AppointmentService
//
// This file implements the AppointmentService, which books pets into
// hospitals. Booking validates that the pet, hospital, and doctor exist
// and that the doctor actually works at the stated hospital, all inside
// one transaction. When the client supplies an idempotency key, a
// replayed booking returns the originally created appointment instead of
// inserting a second row.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
	"github.com/pawpoint/go-vet-backend/internal/repo"
)

// BookingInput carries the validated booking payload.
type BookingInput struct {
	PetID      int
	HospitalID int
	DoctorID   int
	Date       time.Time

	// IdempotencyKey is optional; when set, retries with the same key
	// replay the original booking. UserKey scopes the key to a caller.
	IdempotencyKey string
	UserKey        string
}

// AppointmentService implements the use-cases around appointments.
type AppointmentService struct {
	// DB is the database handle used for all appointment operations.
	DB *gorm.DB
	// IdempotencyTTL bounds how long a booking key can be replayed.
	IdempotencyTTL time.Duration
}

// Book creates an appointment for in. The replayed result reports
// whether an existing appointment was returned instead of a new one
// being created.
//
// Validation order inside the transaction:
//  1. idempotency replay lookup (when a key is present)
//  2. pet exists                -> ErrPetNotFound
//  3. hospital exists           -> ErrHospitalNotFound
//  4. doctor exists             -> ErrDoctorNotFound
//  5. doctor works at hospital  -> ErrDoctorNotInHospital
func (s *AppointmentService) Book(ctx context.Context, in BookingInput) (appt *domain.Appointment, replayed bool, err error) {
	tr := otel.Tracer("services/AppointmentService")
	ctx, span := tr.Start(ctx, "Book",
		trace.WithAttributes(
			attribute.Int("pet.id", in.PetID),
			attribute.Int("hospital.id", in.HospitalID),
			attribute.Int("doctor.id", in.DoctorID),
		),
	)
	defer span.End()

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.IdempotencyKey != "" {
			rec, err := repo.GetIdempotency(ctx, tx, in.UserKey, in.IdempotencyKey, time.Now().UTC())
			if err != nil {
				return err
			}
			if rec != nil {
				prior, err := repo.GetAppointment(ctx, tx, rec.AppointmentID)
				if err != nil {
					return err
				}
				appt, replayed = prior, true
				return nil
			}
		}

		if _, err := repo.GetPet(ctx, tx, in.PetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPetNotFound
			}
			return err
		}
		if _, err := repo.GetHospital(ctx, tx, in.HospitalID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHospitalNotFound
			}
			return err
		}
		doc, err := repo.GetDoctor(ctx, tx, in.DoctorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDoctorNotFound
			}
			return err
		}
		if doc.HospitalID != in.HospitalID {
			return ErrDoctorNotInHospital
		}

		a := &domain.Appointment{
			PetID:      in.PetID,
			HospitalID: in.HospitalID,
			DoctorID:   &in.DoctorID,
			Date:       in.Date,
		}
		if err := repo.CreateAppointment(ctx, tx, a); err != nil {
			return err
		}

		if in.IdempotencyKey != "" {
			ttl := s.IdempotencyTTL
			if ttl <= 0 {
				ttl = 24 * time.Hour
			}
			if err := repo.PutIdempotency(ctx, tx, in.UserKey, in.IdempotencyKey, a.ID, 200, ttl); err != nil {
				return err
			}
		}

		appt = a
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return appt, replayed, nil
}

// Get returns the appointment with the given id, or ErrAppointmentNotFound.
func (s *AppointmentService) Get(ctx context.Context, id int) (*domain.Appointment, error) {
	a, err := repo.GetAppointment(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return a, nil
}

// List returns appointments matching f, ordered by date.
func (s *AppointmentService) List(ctx context.Context, f repo.AppointmentFilter) ([]domain.Appointment, error) {
	return repo.ListAppointments(ctx, s.DB, f)
}

// MarkDone flips the done flag on an appointment, or returns
// ErrAppointmentNotFound.
func (s *AppointmentService) MarkDone(ctx context.Context, id int) error {
	if err := repo.MarkAppointmentDone(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}
	return nil
}
