package server

import (
	"strings"

	"warbler/internal/models"
	"warbler/internal/service"
	"warbler/internal/session"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /api/users?q=...
func (s *Server) ListUsers(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	page := parsePagination(c, 50)

	users, err := s.userService.ListUsers(c.UserContext(), q, page.Limit, page.Offset)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.UserContext(), id, 20)
	if err != nil {
		return respondAppError(c, err)
	}

	resp := fiber.Map{"user": user}
	if uid := currentUserID(c); uid != 0 && uid != id {
		following, err := s.followService.IsFollowing(c.UserContext(), uid, id)
		if err != nil {
			return respondAppError(c, err)
		}
		followedBy, err := s.followService.IsFollowing(c.UserContext(), id, uid)
		if err != nil {
			return respondAppError(c, err)
		}
		resp["following"] = following
		resp["followed_by"] = followedBy
	}

	return c.JSON(resp)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.userService.GetFollowers(c.UserContext(), id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(users)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.userService.GetFollowing(c.UserContext(), id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(users)
}

// GetLikedMessages handles GET /api/users/:id/likes
func (s *Server) GetLikedMessages(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	messages, err := s.userService.GetLikedMessages(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(messages)
}

// GetUserMessages handles GET /api/users/:id/messages
func (s *Server) GetUserMessages(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	messages, err := s.messageService.GetUserMessages(c.UserContext(), id, page.Limit, page.Offset, currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(messages)
}

// UpdateProfile handles POST /api/users/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Username       string  `json:"username"`
		Email          string  `json:"email"`
		ImageURL       string  `json:"image_url"`
		HeaderImageURL string  `json:"header_image_url"`
		Bio            *string `json:"bio"`
		Location       *string `json:"location"`
		Password       string  `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Current password is required to edit your profile"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), userID, service.UpdateProfileInput{
		Username:       req.Username,
		Email:          req.Email,
		ImageURL:       req.ImageURL,
		HeaderImageURL: req.HeaderImageURL,
		Bio:            req.Bio,
		Location:       req.Location,
		Password:       req.Password,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// DeleteAccount handles POST /api/users/delete
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.userService.DeleteAccount(c.UserContext(), userID); err != nil {
		return respondAppError(c, err)
	}

	// The account is gone; tear down the session as a logout would.
	if token, ok := c.Locals("sessionToken").(string); ok {
		_ = s.sessions.Destroy(c.UserContext(), token)
	}
	c.ClearCookie(session.CookieName)

	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// FollowUser handles POST /api/users/follow/:id
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	target, err := s.followService.Follow(c.UserContext(), currentUserID(c), targetID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"following": true, "user": target})
}

// UnfollowUser handles POST /api/users/stop-following/:id
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	target, err := s.followService.Unfollow(c.UserContext(), currentUserID(c), targetID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"following": false, "user": target})
}

// ToggleLike handles POST /api/users/add_like/:id
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, err := s.messageService.ToggleLike(c.UserContext(), currentUserID(c), messageID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"liked": liked})
}
