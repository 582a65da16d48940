package repository

import (
	"context"
	"errors"

	"warbler/internal/cache"
	"warbler/internal/models"
	"warbler/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageRepository defines the interface for message and like-edge data operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Message, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error)
	Delete(ctx context.Context, id uint) error
	Feed(ctx context.Context, userID uint, limit int) ([]*models.Message, error)
	IsLiked(ctx context.Context, userID, messageID uint) (bool, error)
	Like(ctx context.Context, userID, messageID uint) error
	Unlike(ctx context.Context, userID, messageID uint) error
	GetLikedMessages(ctx context.Context, userID uint, currentUserID uint) ([]*models.Message, error)
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// applyMessageDetails adds subqueries to fetch the like count and liked status in a single query.
func (r *messageRepository) applyMessageDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "messages.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.message_id = messages.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.message_id = messages.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery)
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	defer observability.TrackQuery("insert", "messages")()
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Message, error) {
	var message models.Message
	defer observability.TrackQuery("select", "messages")()
	err := r.applyMessageDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&message, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &message, nil
}

func (r *messageRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error) {
	var messages []*models.Message
	defer observability.TrackQuery("select", "messages")()
	err := r.applyMessageDetails(r.db.WithContext(ctx), currentUserID).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "messages")()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Drop like edges first so nothing references the deleted row.
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMessage(ctx, id)
	return nil
}

// Feed returns the home timeline: the user's own messages plus messages from
// users they follow, newest first, capped at limit.
func (r *messageRepository) Feed(ctx context.Context, userID uint, limit int) ([]*models.Message, error) {
	var messages []*models.Message
	defer observability.TrackQuery("select", "messages")()
	err := r.applyMessageDetails(r.db.WithContext(ctx), userID).
		Preload("User").
		Where("user_id = ? OR user_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *messageRepository) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *messageRepository) Like(ctx context.Context, userID, messageID uint) error {
	defer observability.TrackQuery("insert", "likes")()
	// ON CONFLICT DO NOTHING: concurrent duplicate likes resolve via the
	// unique index instead of racing.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Like{UserID: userID, MessageID: messageID}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMessage(ctx, messageID)
	return nil
}

func (r *messageRepository) Unlike(ctx context.Context, userID, messageID uint) error {
	defer observability.TrackQuery("delete", "likes")()
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMessage(ctx, messageID)
	return nil
}

// GetLikedMessages lists the messages a user has liked, ordered by message id
// for reproducible listings.
func (r *messageRepository) GetLikedMessages(ctx context.Context, userID uint, currentUserID uint) ([]*models.Message, error) {
	var messages []*models.Message
	defer observability.TrackQuery("select", "messages")()
	err := r.applyMessageDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Order("messages.id").
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
