package models

import "time"

// Membership links an employee to a team. The composite primary key
// prevents double assignment.
type Membership struct {
	EmployeeID string    `gorm:"type:varchar(36);primarykey" json:"employeeId"`
	TeamID     string    `gorm:"type:varchar(36);primarykey" json:"teamId"`
	AssignedAt time.Time `gorm:"not null" json:"assignedAt"`
}
