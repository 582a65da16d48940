// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"warbler/internal/models"
	"warbler/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls the size of the generated dataset.
type Options struct {
	Users            int
	MessagesPerUser  int
	FollowsPerUser   int
	LikesPerUser     int
	Password         string
	MaxDaysBack      int
}

// DefaultOptions returns a small but lively demo dataset.
func DefaultOptions() Options {
	return Options{
		Users:           25,
		MessagesPerUser: 8,
		FollowsPerUser:  6,
		LikesPerUser:    10,
		Password:        "warble-me",
		MaxDaysBack:     90,
	}
}

// Run populates the database with fake users, messages, follow edges, and
// likes. Existing data is left untouched; unique collisions are skipped.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hashed, err := service.HashPassword(opts.Password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username:       fmt.Sprintf("%s_%d", gofakeit.Username(), i),
			Email:          gofakeit.Email(),
			Password:       hashed,
			ImageURL:       fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
			HeaderImageURL: models.DefaultHeaderImageURL,
			Bio:            gofakeit.Sentence(8),
			Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if user.ID == 0 {
			continue // collision, skipped by ON CONFLICT
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	maxDays := opts.MaxDaysBack
	if maxDays <= 0 {
		maxDays = 90
	}

	for _, user := range users {
		n := 1 + r.Intn(opts.MessagesPerUser)
		for i := 0; i < n; i++ {
			text := gofakeit.Sentence(6 + r.Intn(10))
			if len(text) > models.MaxMessageLength {
				text = text[:models.MaxMessageLength]
			}
			message := &models.Message{
				Text:      text,
				UserID:    user.ID,
				CreatedAt: randomPastTime(r, maxDays),
			}
			if err := db.Create(message).Error; err != nil {
				return fmt.Errorf("seed message: %w", err)
			}
		}
	}

	for _, user := range users {
		for i := 0; i < opts.FollowsPerUser; i++ {
			target := users[r.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			edge := &models.Follow{FollowerID: user.ID, FollowedID: target.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error; err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}

	var messages []models.Message
	if err := db.Find(&messages).Error; err != nil {
		return fmt.Errorf("load messages for likes: %w", err)
	}
	for _, user := range users {
		for i := 0; i < opts.LikesPerUser && len(messages) > 0; i++ {
			message := messages[r.Intn(len(messages))]
			if message.UserID == user.ID {
				continue // users never like their own warbles
			}
			like := &models.Like{UserID: user.ID, MessageID: message.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
	}

	return nil
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
