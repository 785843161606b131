package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	// Profile picture stored as a blob and returned base64-encoded in JSON
	// responses, matching what the web client renders into a data: URL.
	Image  []byte `gorm:"type:bytea" json:"-"`
	Role   string `gorm:"size:20;not null;default:'user'" json:"role"`
	Banned bool   `gorm:"not null;default:false" json:"banned"`
}

// BeforeCreate assigns an ID when the database has no uuid default (sqlite).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
