package settings

import (
	"time"

	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const maskedValue = "***"

// GET /api/settings
// Returns every setting as a flat key/value object. The SMTP password is
// masked so it never leaves the server.
func GetSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Setting
		if err := database.DB.Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}

		out := fiber.Map{}
		for _, row := range rows {
			if row.Key == models.SettingSMTPPassword {
				if row.Value != "" {
					out[row.Key] = maskedValue
				} else {
					out[row.Key] = ""
				}
				continue
			}
			out[row.Key] = row.Value
		}

		return c.JSON(out)
	}
}

// PUT /api/settings
// Accepts a flat key/value object and updates the matching rows. Unknown
// keys are ignored rather than created. Writing the masked password value
// back is a no-op, so a round-tripped form does not clobber the secret.
func UpdateSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]string
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		for key, value := range body {
			if key == models.SettingSMTPPassword && value == maskedValue {
				continue
			}
			res := database.DB.Model(&models.Setting{}).
				Where("key = ?", key).
				Updates(map[string]interface{}{"value": value, "updated_at": time.Now()})
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update settings")
			}
		}

		return c.JSON(fiber.Map{"message": "Settings updated successfully"})
	}
}
