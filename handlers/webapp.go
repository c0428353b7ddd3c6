package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"game-arena-backend/models"
	"game-arena-backend/services"
)

// characterView is the character JSON shape the webapp endpoints return:
// the stored stat sheet plus the derived level position.
type characterView struct {
	models.Character
	CurrentLevel          int `json:"currentLevel"`
	ExperienceToNextLevel int `json:"experienceToNextLevel"`
}

func userJSON(u models.GameUser) fiber.Map {
	return fiber.Map{"user_id": u.UserID, "photo_url": u.PhotoURL}
}

func SetupWebAppRoutes(app *fiber.App, userService *services.UserService) {
	app.Post("/webapp", func(c *fiber.Ctx) error {
		type Req struct {
			UserID   int64   `json:"user_id"`
			PhotoURL *string `json:"photo_url"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.UserID == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User ID is required",
			})
		}

		user, character, created, err := userService.EnsurePlayerAndCharacter(req.UserID, req.PhotoURL)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database error",
				"cause": err.Error(),
			})
		}

		status := fiber.StatusOK
		message := "User found"
		if created {
			status = fiber.StatusCreated
			message = "User created"
		}
		return c.Status(status).JSON(fiber.Map{
			"message":   message,
			"user":      userJSON(user),
			"character": character,
		})
	})

	app.Get("/webapp/:user_id", func(c *fiber.Ctx) error {
		userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		view, err := userService.GetPlayerView(userID)
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database error",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"user": userJSON(view.User),
			"character": characterView{
				Character:             view.Character,
				CurrentLevel:          view.CurrentLevel,
				ExperienceToNextLevel: view.ExperienceToNextLevel,
			},
			"experience_levels": view.Levels,
		})
	})
}
