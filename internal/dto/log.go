package dto

import (
	"time"

	"github.com/yukikurage/workforce-management-api/internal/models"
)

// LogUserDTO is the user summary attached to a log entry
type LogUserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LogOrganisationDTO is the organisation summary attached to a log entry
type LogOrganisationDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LogDTO represents an audit log entry in API responses
type LogDTO struct {
	ID             string              `json:"id"`
	OrganisationID *string             `json:"organisationId"`
	UserID         *string             `json:"userId"`
	Action         string              `json:"action"`
	Event          *string             `json:"event"`
	Status         *int                `json:"status"`
	IP             *string             `json:"ip"`
	Timestamp      time.Time           `json:"timestamp"`
	User           *LogUserDTO         `json:"user"`
	Organisation   *LogOrganisationDTO `json:"organisation"`
}

// LogListResponse represents the admin log listing
type LogListResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Logs    []LogDTO `json:"logs"`
}

// ToLogDTO converts a log entry to DTO
func ToLogDTO(entry models.LogEntry) LogDTO {
	result := LogDTO{
		ID:             entry.ID,
		OrganisationID: entry.OrganisationID,
		UserID:         entry.UserID,
		Action:         entry.Action,
		Event:          entry.Event,
		Status:         entry.Status,
		IP:             entry.IP,
		Timestamp:      entry.Timestamp,
	}

	if entry.User != nil {
		result.User = &LogUserDTO{
			ID:    entry.User.ID,
			Name:  entry.User.Name,
			Email: entry.User.Email,
		}
	}
	if entry.Organisation != nil {
		result.Organisation = &LogOrganisationDTO{
			ID:   entry.Organisation.ID,
			Name: entry.Organisation.Name,
		}
	}
	return result
}

// ToLogListResponse converts log entries to the listing response
func ToLogListResponse(entries []models.LogEntry) LogListResponse {
	logs := make([]LogDTO, len(entries))
	for i, entry := range entries {
		logs[i] = ToLogDTO(entry)
	}
	return LogListResponse{Success: true, Count: len(logs), Logs: logs}
}
