package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/workforce-management-api/internal/constants"
	"github.com/yukikurage/workforce-management-api/internal/dto"
	"github.com/yukikurage/workforce-management-api/internal/middleware"
	"github.com/yukikurage/workforce-management-api/internal/services"
)

// TeamHandler handles team and membership requests
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListTeams returns the teams of the caller's organisation
func (h *TeamHandler) ListTeams(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	teams, err := h.teamService.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to fetch teams")
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam returns a team with its assigned employees
func (h *TeamHandler) GetTeam(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	detail, err := h.teamService.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch team")
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDetailDTO(*detail.Team, detail.Employees))
}

// CreateTeam creates a team in the caller's organisation
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type CreateTeamRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var req CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), identity, services.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "Failed to create team")
		return
	}

	middleware.Annotate(c, constants.EventTeamCreated, constants.EventTeamCreated)
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam applies the provided fields to a team
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type UpdateTeamRequest struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	var req UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), identity, c.Param("id"), services.UpdateTeamInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "Failed to update team")
		return
	}

	middleware.Annotate(c, constants.EventTeamUpdated, constants.EventTeamUpdated)
	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team and its memberships
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete team")
		return
	}

	middleware.Annotate(c, constants.EventTeamDeleted, constants.EventTeamDeleted)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Team deleted successfully"})
}

// AssignEmployees links one or more employees to a team
func (h *TeamHandler) AssignEmployees(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type AssignRequest struct {
		EmployeeID  string   `json:"employeeId"`
		EmployeeIDs []string `json:"employeeIds"`
	}

	var req AssignRequest
	if !bindJSON(c, &req) {
		return
	}

	// an empty employeeIds array does not shadow a single employeeId
	ids := req.EmployeeIDs
	if len(ids) == 0 && req.EmployeeID != "" {
		ids = []string{req.EmployeeID}
	}

	assigned, err := h.teamService.Assign(c.Request.Context(), identity, c.Param("id"), ids)
	if err != nil {
		respondError(c, err, "Failed to assign employees")
		return
	}

	middleware.Annotate(c, constants.EventTeamEmployeesAssigned, constants.EventTeamEmployeesAssigned)
	c.JSON(http.StatusOK, dto.AssignResponse{
		Message:  "Employees assigned successfully",
		Assigned: assigned,
	})
}

// UnassignEmployee removes one employee from a team
func (h *TeamHandler) UnassignEmployee(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type UnassignRequest struct {
		EmployeeID string `json:"employeeId"`
	}

	var req UnassignRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.teamService.Unassign(c.Request.Context(), identity, c.Param("id"), req.EmployeeID); err != nil {
		respondError(c, err, "Failed to unassign employee")
		return
	}

	middleware.Annotate(c, constants.EventTeamEmployeeUnassigned, constants.EventTeamEmployeeUnassigned)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee unassigned successfully"})
}
