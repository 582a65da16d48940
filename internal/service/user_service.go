package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

// UserService provides profile and account business logic.
type UserService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	followRepo  repository.FollowRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, messageRepo repository.MessageRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		followRepo:  followRepo,
	}
}

// GetUserByID returns the user with follower/following counts.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile returns the user with counts and their most recent messages.
func (s *UserService) GetProfile(ctx context.Context, id uint, messageLimit int) (*models.User, error) {
	return s.userRepo.GetByIDWithMessages(ctx, id, messageLimit)
}

// ListUsers returns users, optionally filtered by a username substring.
func (s *UserService) ListUsers(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, query, limit, offset)
}

// GetFollowers lists the users following the given user.
func (s *UserService) GetFollowers(ctx context.Context, id uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(ctx, id)
}

// GetFollowing lists the users the given user follows.
func (s *UserService) GetFollowing(ctx context.Context, id uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(ctx, id)
}

// GetLikedMessages lists the messages the given user has liked.
func (s *UserService) GetLikedMessages(ctx context.Context, id uint, currentUserID uint) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.messageRepo.GetLikedMessages(ctx, id, currentUserID)
}

// UpdateProfileInput carries the editable profile fields plus the current
// password, which must verify before any change is applied. Bio and Location
// are pointers so an absent field leaves the stored value alone while an
// empty string clears it.
type UpdateProfileInput struct {
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            *string
	Location       *string
	Password       string
}

// UpdateProfile applies the edit after confirming the caller's current
// password. A wrong password is a ValidationError, indistinguishable from
// other form errors. The user is loaded through the uncached
// password-bearing read; a cached profile has no hash to verify against.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetWithPassword(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(user.Password, in.Password) {
		return nil, models.NewValidationError("Incorrect password")
	}

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = in.Email
	}
	if in.ImageURL != "" {
		user.ImageURL = in.ImageURL
	}
	if in.HeaderImageURL != "" {
		user.HeaderImageURL = in.HeaderImageURL
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Location != nil {
		user.Location = *in.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the caller's account along with their messages and
// every edge referencing them.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
