package errors

import (
	stderrors "errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindAuthentication:
		return "AuthenticationError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindNotFound:
		return "NotFoundError"
	case KindConflict:
		return "ConflictError"
	default:
		return "InternalError"
	}
}

// Status returns the HTTP status code for the kind.
// Conflicts are reported as 500, uniqueness violations are not mapped to 409.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError is an error carrying a Kind and a user facing message.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without a cause
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap creates a new AppError with a cause
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *AppError     { return New(KindValidation, message) }
func Authentication(message string) *AppError { return New(KindAuthentication, message) }
func Authorization(message string) *AppError  { return New(KindAuthorization, message) }
func NotFound(message string) *AppError       { return New(KindNotFound, message) }

func Conflict(message string, err error) *AppError { return Wrap(KindConflict, message, err) }
func Internal(message string, err error) *AppError { return Wrap(KindInternal, message, err) }

// KindOf reports the kind of err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// APIError represents the JSON body of every error response
type APIError struct {
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

var exposeDetails atomic.Bool

// SetExposeDetails toggles diagnostic details in error responses.
// Enabled outside production only.
func SetExposeDetails(enabled bool) {
	exposeDetails.Store(enabled)
}

// ExposeDetails reports whether diagnostic details are written
func ExposeDetails() bool {
	return exposeDetails.Load()
}

// Respond writes err as an error response and aborts the chain.
func Respond(c *gin.Context, err error) {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		appErr = Internal("Internal Server Error", err)
	}

	body := APIError{Message: appErr.Message}
	if ExposeDetails() && appErr.Err != nil {
		body.Error = appErr.Err.Error()
	}
	c.AbortWithStatusJSON(appErr.Kind.Status(), body)
}

// RespondBinding writes a 400 for a request body that failed to bind.
func RespondBinding(c *gin.Context, message string, err error) {
	body := APIError{Message: message}
	if ExposeDetails() {
		body.Error = err.Error()

		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			body.Details = fields
		}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string, cause error) {
	if message == "" {
		message = "Unauthorized"
	}
	Respond(c, Wrap(KindAuthentication, message, cause))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	Respond(c, Authorization(message))
}
