package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a login identity. Email is unique across all organisations.
type User struct {
	ID             string    `gorm:"type:varchar(36);primarykey" json:"id"`
	OrganisationID string    `gorm:"type:varchar(36);not null" json:"organisationId"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:varchar(255);not null" json:"-"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	IsAdmin        bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Relations
	Organisation Organisation `gorm:"foreignKey:OrganisationID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}
