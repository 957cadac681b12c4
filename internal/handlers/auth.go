package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/workforce-management-api/internal/audit"
	"github.com/yukikurage/workforce-management-api/internal/constants"
	"github.com/yukikurage/workforce-management-api/internal/dto"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"github.com/yukikurage/workforce-management-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	auditor     *audit.Auditor
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, auditor *audit.Auditor) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		auditor:     auditor,
	}
}

// Register creates an organisation with its first user and returns a token.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		OrgName   string `json:"orgName"`
		AdminName string `json:"adminName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		IsAdmin   *bool  `json:"isAdmin"`
	}

	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	// The first user of a new organisation is an admin unless told otherwise.
	isAdmin := true
	if req.IsAdmin != nil {
		isAdmin = *req.IsAdmin
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		OrgName:   req.OrgName,
		AdminName: req.AdminName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   isAdmin,
	})
	if err != nil {
		respondError(c, err, "Registration Failed")
		return
	}

	h.record(c, constants.EventUserRegister, http.StatusCreated, result.User)
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Token:   result.Token,
		IsAdmin: result.User.IsAdmin,
	})
}

// Login verifies credentials and returns a token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, "Login Failed")
		return
	}

	h.record(c, constants.EventUserLogin, http.StatusOK, result.User)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: result.Token})
}

// record writes the audit entry before the response is sent.
func (h *AuthHandler) record(c *gin.Context, event string, status int, user *models.User) {
	entry := audit.Resolve(audit.RequestInfo{
		Method:       c.Request.Method,
		URL:          c.Request.URL.RequestURI(),
		ForwardedFor: c.GetHeader("X-Forwarded-For"),
		PeerAddr:     c.Request.RemoteAddr,
		Explicit: audit.Entry{
			Action:         event,
			Event:          audit.String(event),
			Status:         audit.Int(status),
			OrganisationID: audit.String(user.OrganisationID),
			UserID:         audit.String(user.ID),
		},
	})
	h.auditor.Write(c.Request.Context(), entry)
}
