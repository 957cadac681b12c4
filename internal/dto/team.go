package dto

import (
	"github.com/yukikurage/workforce-management-api/internal/models"
)

// TeamDetailDTO represents a team together with its assigned employees
type TeamDetailDTO struct {
	models.Team
	Employees []models.Employee `json:"employees"`
}

// AssignResponse reports how many employees were eligible for assignment
type AssignResponse struct {
	Message  string `json:"message"`
	Assigned int    `json:"assigned"`
}

// ToTeamDetailDTO converts a team and its employees to DTO
func ToTeamDetailDTO(team models.Team, employees []models.Employee) TeamDetailDTO {
	if employees == nil {
		employees = []models.Employee{}
	}
	return TeamDetailDTO{Team: team, Employees: employees}
}
