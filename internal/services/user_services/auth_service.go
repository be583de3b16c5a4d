// File: internal/services/user_services/auth_service.go
package user_services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abudi-09/Chat-App/internal/auth"
	"github.com/abudi-09/Chat-App/internal/domain"
	"github.com/abudi-09/Chat-App/internal/repository/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
)

// AuthService handles account creation and credential verification. It
// issues the signed token; setting it as a cookie is the handler's job.
type AuthService struct {
	userRepo     user.UserRepository
	jwtSecretKey string
	logger       Logger
}

func NewAuthService(userRepo user.UserRepository, jwtSecretKey string, logger Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		logger:       logger,
	}
}

// Signup creates the account and returns the user together with a fresh
// session token.
func (s *AuthService) Signup(ctx context.Context, fullName, email, password string) (*domain.User, string, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))

	if fullName == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("all fields are required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("signup existence check failed", "error", err)
		return nil, "", fmt.Errorf("could not create account")
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	u := &domain.User{FullName: fullName, Email: email}
	if err := u.HashPassword(password); err != nil {
		return nil, "", err
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		s.logger.Error("signup persist failed", "error", err)
		return nil, "", fmt.Errorf("could not create account")
	}

	token, err := auth.GenerateJWT(created.ID, []byte(s.jwtSecretKey))
	if err != nil {
		s.logger.Error("signup token generation failed", "user_id", created.ID, "error", err)
		return nil, "", fmt.Errorf("could not create session")
	}

	s.logger.Info("user signed up", "user_id", created.ID, "email_prefix", maskEmail(created.Email))
	return created, token, nil
}

// Login verifies credentials and returns the user with a fresh session
// token. Unknown email and wrong password produce the same error so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", "error", err)
		return nil, "", fmt.Errorf("could not log in")
	}

	if err := u.ValidatePassword(password); err != nil {
		s.logger.Warn("login rejected", "email_prefix", maskEmail(email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID, []byte(s.jwtSecretKey))
	if err != nil {
		s.logger.Error("login token generation failed", "user_id", u.ID, "error", err)
		return nil, "", fmt.Errorf("could not create session")
	}

	s.logger.Info("user logged in", "user_id", u.ID)
	return u, token, nil
}

// ValidateJWTToken verifies a session token and returns the user ID it was
// issued for.
func (s *AuthService) ValidateJWTToken(tokenString string) (uint, error) {
	return auth.ValidateToken(tokenString, []byte(s.jwtSecretKey))
}

func maskEmail(email string) string {
	return email[:min(4, len(email))] + "****"
}
