package models

import (
	"time"

	"gorm.io/gorm"
)

type Organisation struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Organisation) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}
