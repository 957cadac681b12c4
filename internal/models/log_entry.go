package models

import (
	"time"

	"gorm.io/gorm"
)

// LogEntry is an append-only audit record. Organisation and user are
// nil for system level events.
type LogEntry struct {
	ID             string    `gorm:"type:varchar(36);primarykey" json:"id"`
	OrganisationID *string   `gorm:"type:varchar(36)" json:"organisationId"`
	UserID         *string   `gorm:"type:varchar(36)" json:"userId"`
	Action         string    `gorm:"type:varchar(255);not null" json:"action"`
	Event          *string   `gorm:"type:varchar(100)" json:"event"`
	Status         *int      `json:"status"`
	IP             *string   `gorm:"type:varchar(64)" json:"ip"`
	Timestamp      time.Time `gorm:"not null" json:"timestamp"`

	// Relations
	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Organisation *Organisation `gorm:"foreignKey:OrganisationID" json:"-"`
}

func (LogEntry) TableName() string {
	return "logs"
}

func (l *LogEntry) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	return nil
}
