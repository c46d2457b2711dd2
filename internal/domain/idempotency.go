// Package domain defines the core persistence models for the application.
package domain

import "time"

// Idempotency records the result of a previously processed booking
// request, keyed by (user_id, key). It lets clients retry POST
// /appointments safely: a replay returns the originally created
// appointment instead of booking a second one.
type Idempotency struct {
	ID            string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID        string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_key,priority:1"`
	Key           string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_key,priority:2"`
	AppointmentID int       `gorm:"type:INTEGER NOT NULL"`
	Status        int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt     time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt     time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
