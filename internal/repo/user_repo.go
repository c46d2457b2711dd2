// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making
// them safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only
// CRUD persistence and query composition.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateUser inserts a new user row. The caller supplies a fully formed
// record (including the password hash); CreatedAt is set to UTC here.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	u.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(u).Error
}

// GetUserByID fetches a user by primary key, or ErrNotFound if missing.
func GetUserByID(ctx context.Context, db *gorm.DB, id int) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "userId = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByPhone fetches a user by phone number, or ErrNotFound if missing.
func GetUserByPhone(ctx context.Context, db *gorm.DB, phone string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExistsByPhone reports whether any user row carries the phone number.
func UserExistsByPhone(ctx context.Context, db *gorm.DB, phone string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.User{}).Where("phone = ?", phone).Count(&n).Error
	return n > 0, err
}

// UserExistsByEmail reports whether any user row carries the email address.
func UserExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

// ListUsers returns all users ordered by creation time descending
// (most recent first). It returns an empty slice when the table is empty.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).Order("createdAt desc").Find(&out).Error
	return out, err
}

// DeleteUser removes the user row with the given id. If no rows are
// affected, it returns ErrNotFound. Dependent-row policy (pets) is
// enforced at the service layer before this call; the FK constraint acts
// as a backstop.
func DeleteUser(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Delete(&domain.User{}, "userId = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
