package constants

import "time"

// Gin context keys
const (
	ContextKeyIdentity       = "identity"
	ContextKeyOrganisationID = "organisation_id"
	ContextKeyAuditAction    = "audit_action"
	ContextKeyAuditEvent     = "audit_event"
)

// Token settings
const (
	DefaultTokenTTL = 8 * time.Hour
	BearerPrefix    = "Bearer "
)

// Log retrieval limits
const (
	MaxLogEntries     = 1000
	MinLogEntries     = 1
	DefaultLogEntries = MaxLogEntries
)

// Audit events written outside the generic request logger
const (
	EventUserRegister = "USER_REGISTER"
	EventUserLogin    = "USER_LOGIN"

	EventEmployeeCreated = "EMPLOYEE_CREATED"
	EventEmployeeUpdated = "EMPLOYEE_UPDATED"
	EventEmployeeDeleted = "EMPLOYEE_DELETED"

	EventTeamCreated            = "TEAM_CREATED"
	EventTeamUpdated            = "TEAM_UPDATED"
	EventTeamDeleted            = "TEAM_DELETED"
	EventTeamEmployeesAssigned  = "TEAM_EMPLOYEES_ASSIGNED"
	EventTeamEmployeeUnassigned = "TEAM_EMPLOYEE_UNASSIGNED"
)
