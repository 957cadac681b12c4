package dto

// StatsSummaryResponse holds the headline counts of an organisation
type StatsSummaryResponse struct {
	TotalEmployees int64 `json:"totalEmployees"`
	TotalTeams     int64 `json:"totalTeams"`
	TotalAdmins    int64 `json:"totalAdmins"`
}
