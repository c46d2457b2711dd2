// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pawpoint/go-vet-backend/internal/domain"
)

// UsersStats returns aggregate metadata for the user directory: the
// total number of rows and the most recent CreatedAt among them. When
// the table is empty, count is 0 and maxCreatedAt is nil.
//
// The admin user listing uses this to build a weak ETag without loading
// the full result set.
func UsersStats(ctx context.Context, db *gorm.DB) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.User{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest createdAt (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time `gorm:"column:createdAt"`
	}
	if err = q.Select("createdAt").Order("createdAt DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
