// Package services – DirectoryService
//
// This file implements the DirectoryService, which serves the shared
// reference data (cities, hospitals, doctors) and the admin mutations on
// it. Cities are immutable; hospitals and doctors follow the deletion
// policy matrix: a hospital delete cascades to its doctors, a doctor
// delete leaves referencing appointments alive with a null doctor.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
	"github.com/pawpoint/go-vet-backend/internal/repo"
)

// DoctorInput carries the validated doctor-creation payload.
type DoctorInput struct {
	Name       string
	Phone      string
	HospitalID int
}

// DirectoryService implements the use-cases around reference data.
type DirectoryService struct {
	// DB is the database handle used for all directory operations.
	DB *gorm.DB
}

// Cities returns all cities in plate-code order.
func (s *DirectoryService) Cities(ctx context.Context) ([]domain.City, error) {
	return repo.ListCities(ctx, s.DB)
}

// HospitalsByCity returns the hospitals in cityID, optionally narrowed
// to a district. ErrCityNotFound when the city does not exist.
func (s *DirectoryService) HospitalsByCity(ctx context.Context, cityID int, district string) ([]domain.Hospital, error) {
	if _, err := repo.GetCity(ctx, s.DB, cityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return repo.ListHospitalsByCity(ctx, s.DB, cityID, district)
}

// DoctorsByHospital returns the doctors employed by hospitalID.
// ErrHospitalNotFound when the hospital does not exist.
func (s *DirectoryService) DoctorsByHospital(ctx context.Context, hospitalID int) ([]domain.Doctor, error) {
	if _, err := repo.GetHospital(ctx, s.DB, hospitalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return repo.ListDoctorsByHospital(ctx, s.DB, hospitalID)
}

// CreateDoctor hires a doctor into a hospital. ErrHospitalNotFound when
// the hospital does not exist.
func (s *DirectoryService) CreateDoctor(ctx context.Context, in DoctorInput) (*domain.Doctor, error) {
	d := &domain.Doctor{Name: in.Name, Phone: in.Phone, HospitalID: in.HospitalID}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetHospital(ctx, tx, in.HospitalID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHospitalNotFound
			}
			return err
		}
		return repo.CreateDoctor(ctx, tx, d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteDoctor removes a doctor; appointments referencing them survive
// with a null doctor reference. ErrDoctorNotFound when absent.
func (s *DirectoryService) DeleteDoctor(ctx context.Context, id int) error {
	if err := repo.DeleteDoctor(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDoctorNotFound
		}
		return err
	}
	return nil
}

// DeleteHospital removes a hospital and, through the schema's cascade,
// its doctors. Appointments booked there survive: only their doctor
// reference is nulled by the doctor cascade. ErrHospitalNotFound when
// absent.
func (s *DirectoryService) DeleteHospital(ctx context.Context, id int) error {
	if err := repo.DeleteHospital(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHospitalNotFound
		}
		return err
	}
	return nil
}
