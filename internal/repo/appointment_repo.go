// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Appointment model, including the filtered listing used by the API.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// AppointmentFilter narrows ListAppointments. Zero-valued fields are
// ignored; UserID filters through the pet's owner.
type AppointmentFilter struct {
	PetID      int
	UserID     int
	HospitalID int
	From       time.Time
	To         time.Time
}

// CreateAppointment inserts a new appointment row. IsDone is left at its
// database default (false).
func CreateAppointment(ctx context.Context, db *gorm.DB, a *domain.Appointment) error {
	return db.WithContext(ctx).Create(a).Error
}

// GetAppointment fetches an appointment by primary key, or ErrNotFound.
func GetAppointment(ctx context.Context, db *gorm.DB, id int) (*domain.Appointment, error) {
	var a domain.Appointment
	if err := db.WithContext(ctx).First(&a, "appointmentId = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAppointments returns appointments matching f, ordered by
// appointment date ascending. The date window is half-open: From is
// inclusive, To is exclusive.
func ListAppointments(ctx context.Context, db *gorm.DB, f AppointmentFilter) ([]domain.Appointment, error) {
	q := db.WithContext(ctx).Model(&domain.Appointment{})

	if f.PetID != 0 {
		q = q.Where("appointments.petId = ?", f.PetID)
	}
	if f.UserID != 0 {
		q = q.Joins("JOIN pets ON pets.petId = appointments.petId").
			Where("pets.userId = ?", f.UserID)
	}
	if f.HospitalID != 0 {
		q = q.Where("appointments.hospitalId = ?", f.HospitalID)
	}
	if !f.From.IsZero() {
		q = q.Where("appointments.appointmentDate >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("appointments.appointmentDate < ?", f.To)
	}

	var out []domain.Appointment
	err := q.Order("appointments.appointmentDate asc").Find(&out).Error
	return out, err
}

// CountAppointmentsByPet returns the number of appointments referencing
// petID. The pet deletion policy (restrict while appointments exist) is
// built on this count.
func CountAppointmentsByPet(ctx context.Context, db *gorm.DB, petID int) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Appointment{}).Where("petId = ?", petID).Count(&n).Error
	return n, err
}

// MarkAppointmentDone sets the done flag on an appointment. If no rows
// are affected (missing id), it returns ErrNotFound.
func MarkAppointmentDone(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("appointmentId = ?", id).
		Update("isDone", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
