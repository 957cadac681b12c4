package services

import (
	apierrors "github.com/yukikurage/workforce-management-api/internal/errors"
)

var (
	ErrRegisterFieldsRequired = apierrors.Validation("orgName, adminName, email and password required")
	ErrLoginFieldsRequired    = apierrors.Validation("email and password required")
	ErrUserNotFound           = apierrors.NotFound("User Not Found")
	ErrInvalidPassword        = apierrors.Authentication("Invalid Password")

	ErrEmployeeNamesRequired = apierrors.Validation("firstName & lastName required")
	ErrEmployeeNotFound      = apierrors.NotFound("Employee Not Found")

	ErrTeamNameRequired     = apierrors.Validation("name required")
	ErrTeamNotFound         = apierrors.NotFound("Team Not Found")
	ErrNoEmployeeIDs        = apierrors.Validation("No employee IDs provided")
	ErrEmployeeIDRequired   = apierrors.Validation("Employee ID required")
	ErrMembershipTeamAbsent = apierrors.NotFound("Team not found")
)
