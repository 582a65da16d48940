// Package service contains the business rules sitting between the HTTP
// handlers and the repositories.
package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/observability"
	"warbler/internal/repository"
	"warbler/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored hash. Both the
// login flow and the profile-edit confirmation go through this single check.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AuthService provides signup and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Username string
	Email    string
	Password string
	ImageURL string
}

// Signup validates the input, hashes the password, and persists the new user.
// Duplicate usernames or emails surface as a ValidationError, never as a raw
// storage failure.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:       in.Username,
		Email:          in.Email,
		Password:       hashed,
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.Signups.Inc()
	return user, nil
}

// Authenticate looks up the user by username and verifies the password.
// It returns (nil, nil) on any mismatch: a wrong username and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(user.Password, password) {
		observability.Logins.WithLabelValues("failure").Inc()
		return nil, nil
	}
	observability.Logins.WithLabelValues("success").Inc()
	return user, nil
}
