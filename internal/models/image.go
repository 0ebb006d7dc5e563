package models

import "gorm.io/gorm"

// Image holds the metadata for a picture hosted on the external media
// host. The binary itself lives remotely; PublicID is the host's handle
// for it and is required to delete the remote copy.
type Image struct {
	ID         string `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string `json:"user" gorm:"index;type:varchar(36)"`
	PublicID   string `json:"publicId" gorm:"type:varchar(255)"`
	URL        string `json:"url" gorm:"type:varchar(255)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
