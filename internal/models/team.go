package models

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID             string    `gorm:"type:varchar(36);primarykey" json:"id"`
	OrganisationID string    `gorm:"type:varchar(36);not null" json:"organisationId"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}

func (t *Team) OrganisationKey() string {
	return t.OrganisationID
}
