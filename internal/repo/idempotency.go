// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file stores and looks up idempotency records for
// appointment booking, enabling safe client retries of POST requests.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// GetIdempotency returns the idempotency record for (userID, key) when
// one exists and has not expired at `now`. It returns (nil, nil) when no
// valid record is present.
func GetIdempotency(ctx context.Context, db *gorm.DB, userID, key string, now time.Time) (*domain.Idempotency, error) {
	var rec domain.Idempotency
	err := db.WithContext(ctx).
		Where("user_id = ? AND key = ? AND expires_at > ?", userID, key, now).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// PutIdempotency records that (userID, key) produced appointmentID with
// the given HTTP status, valid for ttl. A concurrent duplicate insert
// surfaces the unique-constraint error to the caller.
func PutIdempotency(ctx context.Context, db *gorm.DB, userID, key string, appointmentID, status int, ttl time.Duration) error {
	now := time.Now().UTC()
	rec := &domain.Idempotency{
		ID:            uuid.NewString(),
		UserID:        userID,
		Key:           key,
		AppointmentID: appointmentID,
		Status:        status,
		CreatedAt:     now,
		ExpiresAt:     now.Add(ttl),
	}
	return db.WithContext(ctx).Create(rec).Error
}
