package server

import (
	"warbler/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Home handles GET /api/. An authenticated caller gets their personalized
// feed; an anonymous caller gets the landing payload, never a feed.
func (s *Server) Home(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.JSON(fiber.Map{
			"landing": true,
			"message": "Sign up or log in to see your feed",
		})
	}

	feed, err := s.messageService.HomeFeed(c.UserContext(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"landing":  false,
		"messages": feed,
	})
}

// CreateMessage handles POST /api/messages/new
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.CreateMessage(c.UserContext(), currentUserID(c), req.Text)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetMessage handles GET /api/messages/:id
func (s *Server) GetMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	message, err := s.messageService.GetMessage(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(message)
}

// DeleteMessage handles POST /api/messages/:id/delete
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.DeleteMessage(c.UserContext(), currentUserID(c), id); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": true})
}
