package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/workforce-management-api/internal/auth"
	apierrors "github.com/yukikurage/workforce-management-api/internal/errors"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"github.com/yukikurage/workforce-management-api/internal/repository"
	"gorm.io/gorm"
)

// AuthService handles registration and login.
type AuthService struct {
	orgRepo  repository.OrganisationRepository
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(orgRepo repository.OrganisationRepository, userRepo repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the information needed to create an organisation and its first user.
type RegisterInput struct {
	OrgName   string
	AdminName string
	Email     string
	Password  string
	IsAdmin   bool
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by a successful register or login.
type AuthResult struct {
	Token        string
	User         *models.User
	Organisation *models.Organisation
}

// Register creates an organisation and a user inside it, then issues a token.
// The two inserts are not transactional: a failed user insert leaves the
// organisation behind.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	orgName := strings.TrimSpace(input.OrgName)
	adminName := strings.TrimSpace(input.AdminName)
	email := strings.TrimSpace(input.Email)
	if orgName == "" || adminName == "" || email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrRegisterFieldsRequired
	}

	org := &models.Organisation{Name: orgName}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, apierrors.Internal("Registration Failed", fmt.Errorf("failed to create organisation: %w", err))
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apierrors.Internal("Registration Failed", err)
	}

	user := &models.User{
		OrganisationID: org.ID,
		Email:          email,
		PasswordHash:   hash,
		Name:           adminName,
		IsAdmin:        input.IsAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.Conflict("Registration Failed", fmt.Errorf("email already registered: %w", err))
		}
		return nil, apierrors.Internal("Registration Failed", fmt.Errorf("failed to create user: %w", err))
	}

	token, err := s.issue(user, org)
	if err != nil {
		return nil, apierrors.Internal("Registration Failed", err)
	}

	return &AuthResult{Token: token, User: user, Organisation: org}, nil
}

// Login verifies credentials and issues a token carrying the user's current state.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrLoginFieldsRequired
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apierrors.Internal("Login Failed", fmt.Errorf("failed to find user: %w", err))
	}

	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		return nil, ErrInvalidPassword
	}

	org, err := s.orgRepo.FindByID(ctx, user.OrganisationID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Internal("Login Failed", fmt.Errorf("failed to find organisation: %w", err))
	}

	token, err := s.issue(user, org)
	if err != nil {
		return nil, apierrors.Internal("Login Failed", err)
	}

	return &AuthResult{Token: token, User: user, Organisation: org}, nil
}

func (s *AuthService) issue(user *models.User, org *models.Organisation) (string, error) {
	claims := auth.Claims{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
	if org != nil {
		claims.OrganisationID = org.ID
		claims.OrganisationName = org.Name
	}
	return s.tokens.Issue(claims)
}
