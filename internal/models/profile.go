package models

import "gorm.io/gorm"

// Profile is the per-user display record, one-to-one with User.
// ImageURL always points at the most recently uploaded image.
type Profile struct {
	ID         string `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string `json:"user" gorm:"uniqueIndex;type:varchar(36)"`
	Bio        string `json:"bio" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Location   string `json:"location" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	ImageURL   string `json:"image" gorm:"type:varchar(255)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
