package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee is a managed record, not a login identity.
type Employee struct {
	ID             string    `gorm:"type:varchar(36);primarykey" json:"id"`
	OrganisationID string    `gorm:"type:varchar(36);not null" json:"organisationId"`
	FirstName      string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName       string    `gorm:"type:varchar(255);not null" json:"lastName"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Phone          string    `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	assignID(&e.ID)
	return nil
}

func (e *Employee) OrganisationKey() string {
	return e.OrganisationID
}
