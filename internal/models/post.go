package models

import "gorm.io/gorm"

// Post is a text post. Name and Avatar are denormalized from the
// author's User record at creation time so the feed can render without
// a join.
type Post struct {
	ID         string `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string `json:"user" gorm:"index;type:varchar(36)"`
	Text       string `json:"text" gorm:"type:varchar(500)" validate:"required,max=500"`
	Name       string `json:"name" gorm:"type:varchar(100)"`
	Avatar     string `json:"avatar" gorm:"type:varchar(255)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
