package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/observability"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

// FeedLimit is the fixed page size of the home timeline.
const FeedLimit = 100

// MessageService provides message and like business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// CreateMessage posts a new warble owned by userID. Users can only ever
// create messages for themselves; ownership is taken from the session
// identity, never from the request body.
func (s *MessageService) CreateMessage(ctx context.Context, userID uint, text string) (*models.Message, error) {
	if err := validation.ValidateMessageText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	message := &models.Message{
		Text:   text,
		UserID: userID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	observability.MessagesWritten.WithLabelValues("create").Inc()
	return s.messageRepo.GetByID(ctx, message.ID, userID)
}

// GetMessage returns a single message with its like details.
func (s *MessageService) GetMessage(ctx context.Context, id uint, currentUserID uint) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id, currentUserID)
}

// GetUserMessages lists a user's messages, newest first.
func (s *MessageService) GetUserMessages(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

// DeleteMessage removes a message. Only the owner may delete it: a
// non-owner gets Forbidden and the message stays.
func (s *MessageService) DeleteMessage(ctx context.Context, userID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return err
	}

	if message.UserID != userID {
		return models.NewForbiddenError("You can only delete your own warbles")
	}

	if err := s.messageRepo.Delete(ctx, messageID); err != nil {
		return err
	}

	observability.MessagesWritten.WithLabelValues("delete").Inc()
	return nil
}

// HomeFeed returns the personalized timeline for userID: their own messages
// and those of users they follow, newest first, capped at FeedLimit.
func (s *MessageService) HomeFeed(ctx context.Context, userID uint) ([]*models.Message, error) {
	return s.messageRepo.Feed(ctx, userID, FeedLimit)
}

// ToggleLike likes the message if not yet liked, or removes the like if it
// exists. Liking your own message is rejected at write time.
// It returns true when the message ends up liked.
func (s *MessageService) ToggleLike(ctx context.Context, userID, messageID uint) (bool, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return false, err
	}

	if message.UserID == userID {
		return false, models.NewValidationError("You cannot like your own warble")
	}

	liked, err := s.messageRepo.IsLiked(ctx, userID, messageID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.messageRepo.Unlike(ctx, userID, messageID); err != nil {
			return false, err
		}
		observability.LikeEdges.WithLabelValues("unlike").Inc()
		return false, nil
	}

	if err := s.messageRepo.Like(ctx, userID, messageID); err != nil {
		return false, err
	}
	observability.LikeEdges.WithLabelValues("like").Inc()
	return true, nil
}
