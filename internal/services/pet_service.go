// Package services – PetService
//
// This file implements the PetService, which manages pets on behalf of
// their owners. It validates owner existence on creation and enforces
// the deletion policy: a pet cannot be removed while appointments still
// reference it. Like the other write paths, multi-step operations run
// inside a transaction with the FK constraints as backstop.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
	"github.com/pawpoint/go-vet-backend/internal/repo"
)

// PetInput carries the validated pet-creation payload.
type PetInput struct {
	Name   string
	Type   string
	Age    *int
	Gender *string
	Breed  *string
	Notes  *string
	UserID int
}

// PetService implements the use-cases around pets. It calls the repo
// package directly; the GORM handle may be a plain *gorm.DB or a
// transaction-bound handle.
type PetService struct {
	// DB is the database handle used for all pet operations.
	DB *gorm.DB
}

// Create inserts a new pet after verifying the owner exists
// (ErrOwnerNotFound otherwise).
func (s *PetService) Create(ctx context.Context, in PetInput) (*domain.Pet, error) {
	p := &domain.Pet{
		Name:   in.Name,
		Type:   in.Type,
		Age:    in.Age,
		Gender: in.Gender,
		Breed:  in.Breed,
		Notes:  in.Notes,
		UserID: in.UserID,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetUserByID(ctx, tx, in.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOwnerNotFound
			}
			return err
		}
		return repo.CreatePet(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the pet with the given id, or ErrPetNotFound.
func (s *PetService) Get(ctx context.Context, id int) (*domain.Pet, error) {
	p, err := repo.GetPet(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByUser returns the pets owned by userID, newest first.
func (s *PetService) ListByUser(ctx context.Context, userID int) ([]domain.Pet, error) {
	return repo.ListPetsByUser(ctx, s.DB, userID)
}

// Delete removes a pet. It fails with ErrPetNotFound when absent and
// with ErrPetHasAppointments while appointments reference the pet.
func (s *PetService) Delete(ctx context.Context, id int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetPet(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPetNotFound
			}
			return err
		}

		n, err := repo.CountAppointmentsByPet(ctx, tx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrPetHasAppointments
		}

		if err := repo.DeletePet(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPetNotFound
			}
			return err
		}
		return nil
	})
}
