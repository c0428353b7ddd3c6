package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"game-arena-backend/services"
)

func SetupBattleRoutes(app *fiber.App, battleService *services.BattleService) {
	app.Get("/battles", func(c *fiber.Ctx) error {
		battles, err := battleService.List(c.Query("status"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database error",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"battles": battles})
	})

	app.Post("/battles", func(c *fiber.Ctx) error {
		type Req struct {
			UserID int64  `json:"user_id"`
			Name   string `json:"name"`
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

		battle, err := battleService.Create(req.UserID, req.Name)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database error",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"battle": battle})
	})

	app.Post("/battles/:battle_id/join", func(c *fiber.Ctx) error {
		battleID := c.Params("battle_id")
		if _, err := uuid.Parse(battleID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Battle not found or already has an opponent",
			})
		}

		type Req struct {
			UserID int64 `json:"user_id"`
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

		battle, err := battleService.Join(battleID, req.UserID)
		switch {
		case errors.Is(err, services.ErrBattleNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Battle not found or already has an opponent",
			})
		case errors.Is(err, services.ErrSelfJoin):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "You cannot join your own battle",
			})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database error",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"battle": battle})
	})

	app.Delete("/battles/:battle_id/delete", func(c *fiber.Ctx) error {
		battleID := c.Params("battle_id")
		if _, err := uuid.Parse(battleID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid battle id",
			})
		}

		err := battleService.Cancel(battleID)
		switch {
		case errors.Is(err, services.ErrBattleNotFound),
			errors.Is(err, services.ErrBattleNotCancellable):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Battle not found or no longer cancellable",
			})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database error",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "Battle cancelled"})
	})
}
