// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// reference directory: cities, hospitals, and doctors.
package repo

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// trTitle title-cases district names with Turkish casing rules, so that
// "kadıköy", "KADIKÖY", and "Kadıköy" all match the seeded spelling
// (dotted/dotless i handling differs from the ASCII rules).
var trTitle = cases.Title(language.Turkish)

// ListCities returns all cities ordered by plate code (primary key).
func ListCities(ctx context.Context, db *gorm.DB) ([]domain.City, error) {
	var out []domain.City
	err := db.WithContext(ctx).Order("cityId asc").Find(&out).Error
	return out, err
}

// GetCity fetches a city by plate code, or ErrNotFound.
func GetCity(ctx context.Context, db *gorm.DB, id int) (*domain.City, error) {
	var c domain.City
	if err := db.WithContext(ctx).First(&c, "cityId = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListHospitalsByCity returns the hospitals located in cityID. When
// district is non-empty it further narrows to that district, normalized
// with Turkish title casing.
func ListHospitalsByCity(ctx context.Context, db *gorm.DB, cityID int, district string) ([]domain.Hospital, error) {
	q := db.WithContext(ctx).Where("cityId = ?", cityID)
	if district != "" {
		q = q.Where("districtName = ?", trTitle.String(district))
	}
	var out []domain.Hospital
	err := q.Order("hospitalName asc").Find(&out).Error
	return out, err
}

// GetHospital fetches a hospital by id, or ErrNotFound.
func GetHospital(ctx context.Context, db *gorm.DB, id int) (*domain.Hospital, error) {
	var h domain.Hospital
	if err := db.WithContext(ctx).First(&h, "hospitalId = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteHospital removes a hospital row, or ErrNotFound when absent.
// The schema cascades the delete to the hospital's doctors, which in
// turn nulls the doctor reference on surviving appointments.
func DeleteHospital(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Delete(&domain.Hospital{}, "hospitalId = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListDoctorsByHospital returns the doctors employed by hospitalID.
func ListDoctorsByHospital(ctx context.Context, db *gorm.DB, hospitalID int) ([]domain.Doctor, error) {
	var out []domain.Doctor
	err := db.WithContext(ctx).
		Where("hospitalId = ?", hospitalID).
		Order("doctorName asc").
		Find(&out).Error
	return out, err
}

// GetDoctor fetches a doctor by id, or ErrNotFound.
func GetDoctor(ctx context.Context, db *gorm.DB, id int) (*domain.Doctor, error) {
	var d domain.Doctor
	if err := db.WithContext(ctx).First(&d, "doctorId = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDoctor inserts a new doctor row.
func CreateDoctor(ctx context.Context, db *gorm.DB, d *domain.Doctor) error {
	return db.WithContext(ctx).Create(d).Error
}

// DeleteDoctor removes a doctor row, or ErrNotFound when absent.
// Appointments referencing the doctor survive with a null reference
// (SET NULL on the FK).
func DeleteDoctor(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Delete(&domain.Doctor{}, "doctorId = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
