package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/workforce-management-api/internal/constants"
	"github.com/yukikurage/workforce-management-api/internal/dto"
	"github.com/yukikurage/workforce-management-api/internal/middleware"
	"github.com/yukikurage/workforce-management-api/internal/services"
)

// EmployeeHandler handles employee-related requests
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// ListEmployees returns the employees of the caller's organisation
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	employees, err := h.employeeService.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "failed to Fetch Employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetEmployee returns a single employee
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to Fetch Employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateEmployee creates an employee in the caller's organisation
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type CreateEmployeeRequest struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email" binding:"omitempty,email"`
		Phone     string `json:"phone"`
	}

	var req CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), identity, services.CreateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		respondError(c, err, "Failed to Create Employee")
		return
	}

	middleware.Annotate(c, constants.EventEmployeeCreated, constants.EventEmployeeCreated)
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee applies the provided fields to an employee
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type UpdateEmployeeRequest struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Email     *string `json:"email" binding:"omitempty,email"`
		Phone     *string `json:"phone"`
	}

	var req UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), identity, c.Param("id"), services.UpdateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		respondError(c, err, "Failed to update Employee")
		return
	}

	middleware.Annotate(c, constants.EventEmployeeUpdated, constants.EventEmployeeUpdated)
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, err, "Failed to Delete Employee")
		return
	}

	middleware.Annotate(c, constants.EventEmployeeDeleted, constants.EventEmployeeDeleted)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee Deleted Successfully"})
}
