// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Pet
// model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// CreatePet inserts a new pet row owned by the user referenced in p.
// CreatedAt is set to UTC here.
func CreatePet(ctx context.Context, db *gorm.DB, p *domain.Pet) error {
	p.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(p).Error
}

// GetPet fetches a pet by primary key, or ErrNotFound if missing.
func GetPet(ctx context.Context, db *gorm.DB, id int) (*domain.Pet, error) {
	var p domain.Pet
	if err := db.WithContext(ctx).First(&p, "petId = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPetsByUser returns all pets owned by userID, newest first.
func ListPetsByUser(ctx context.Context, db *gorm.DB, userID int) ([]domain.Pet, error) {
	var out []domain.Pet
	err := db.WithContext(ctx).
		Where("userId = ?", userID).
		Order("createdAt desc").
		Find(&out).Error
	return out, err
}

// CountPetsByUser returns the number of pets owned by userID. The user
// deletion policy (restrict while pets exist) is built on this count.
func CountPetsByUser(ctx context.Context, db *gorm.DB, userID int) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Pet{}).Where("userId = ?", userID).Count(&n).Error
	return n, err
}

// DeletePet removes the pet row with the given id, or ErrNotFound when
// no rows are affected. Appointment dependents are checked at the
// service layer; the FK restricts as a backstop.
func DeletePet(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Delete(&domain.Pet{}, "petId = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
