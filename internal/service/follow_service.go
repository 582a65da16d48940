package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/observability"
	"warbler/internal/repository"
)

// FollowService provides follow-edge business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a follow edge from userID to targetID. Follows are immediate
// and unilateral; there is no approval step. Following someone already
// followed is a no-op.
func (s *FollowService) Follow(ctx context.Context, userID, targetID uint) (*models.User, error) {
	if userID == targetID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Create(ctx, userID, targetID); err != nil {
		return nil, err
	}

	observability.FollowEdges.WithLabelValues("follow").Inc()
	return target, nil
}

// Unfollow removes the follow edge from userID to targetID. Unfollowing
// someone not followed is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetID uint) (*models.User, error) {
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Delete(ctx, userID, targetID); err != nil {
		return nil, err
	}

	observability.FollowEdges.WithLabelValues("unfollow").Inc()
	return target, nil
}

// IsFollowing reports whether userID follows targetID.
func (s *FollowService) IsFollowing(ctx context.Context, userID, targetID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, userID, targetID)
}
