package service

import (
	"context"

	"warbler/internal/models"
)

type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getWithPasswordFn     func(context.Context, uint) (*models.User, error)
	getByIDWithMessagesFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	getByUsernameFn       func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	deleteFn              func(context.Context, uint) error
	listFn                func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetWithPassword(ctx context.Context, id uint) (*models.User, error) {
	return s.getWithPasswordFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithMessages(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithMessagesFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, query, limit, offset)
}

type messageRepoStub struct {
	createFn           func(context.Context, *models.Message) error
	getByIDFn          func(context.Context, uint, uint) (*models.Message, error)
	getByUserIDFn      func(context.Context, uint, int, int, uint) ([]*models.Message, error)
	deleteFn           func(context.Context, uint) error
	feedFn             func(context.Context, uint, int) ([]*models.Message, error)
	isLikedFn          func(context.Context, uint, uint) (bool, error)
	likeFn             func(context.Context, uint, uint) error
	unlikeFn           func(context.Context, uint, uint) error
	getLikedMessagesFn func(context.Context, uint, uint) ([]*models.Message, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *messageRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *messageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *messageRepoStub) Feed(ctx context.Context, userID uint, limit int) ([]*models.Message, error) {
	return s.feedFn(ctx, userID, limit)
}
func (s *messageRepoStub) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, messageID)
}
func (s *messageRepoStub) Like(ctx context.Context, userID, messageID uint) error {
	return s.likeFn(ctx, userID, messageID)
}
func (s *messageRepoStub) Unlike(ctx context.Context, userID, messageID uint) error {
	return s.unlikeFn(ctx, userID, messageID)
}
func (s *messageRepoStub) GetLikedMessages(ctx context.Context, userID, currentUserID uint) ([]*models.Message, error) {
	return s.getLikedMessagesFn(ctx, userID, currentUserID)
}

type followRepoStub struct {
	createFn       func(context.Context, uint, uint) error
	deleteFn       func(context.Context, uint, uint) error
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
	getFollowersFn func(context.Context, uint) ([]models.User, error)
	getFollowingFn func(context.Context, uint) ([]models.User, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followedID uint) error {
	return s.createFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followedID uint) error {
	return s.deleteFn(ctx, followerID, followedID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}
func (s *followRepoStub) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFollowersFn(ctx, userID)
}
func (s *followRepoStub) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFollowingFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:             func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getWithPasswordFn:     func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithMessagesFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:          func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:              func(context.Context, *models.User) error { return nil },
		updateFn:              func(context.Context, *models.User) error { return nil },
		deleteFn:              func(context.Context, uint) error { return nil },
		listFn:                func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:           func(context.Context, *models.Message) error { return nil },
		getByIDFn:          func(context.Context, uint, uint) (*models.Message, error) { return &models.Message{}, nil },
		getByUserIDFn:      func(context.Context, uint, int, int, uint) ([]*models.Message, error) { return nil, nil },
		deleteFn:           func(context.Context, uint) error { return nil },
		feedFn:             func(context.Context, uint, int) ([]*models.Message, error) { return nil, nil },
		isLikedFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
		likeFn:             func(context.Context, uint, uint) error { return nil },
		unlikeFn:           func(context.Context, uint, uint) error { return nil },
		getLikedMessagesFn: func(context.Context, uint, uint) ([]*models.Message, error) { return nil, nil },
	}
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:       func(context.Context, uint, uint) error { return nil },
		deleteFn:       func(context.Context, uint, uint) error { return nil },
		isFollowingFn:  func(context.Context, uint, uint) (bool, error) { return false, nil },
		getFollowersFn: func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFollowingFn: func(context.Context, uint) ([]models.User, error) { return nil, nil },
	}
}
