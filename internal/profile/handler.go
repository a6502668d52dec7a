package profile

import (
	"time"

	"lalogistics-backend/internal/auth"
	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Picture string `json:"picture"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// GET /api/profile
func GetProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		lastActive := ""
		if user.LastActive != nil {
			lastActive = user.LastActive.Format("2006-01-02 15:04:05")
		}

		return c.JSON(fiber.Map{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"role":        user.Role,
			"employee_id": user.EmployeeID,
			"address":     user.Address,
			"phone":       user.Phone,
			"picture":     user.Picture,
			"last_active": lastActive,
			"created_at":  user.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// PUT /api/profile
func UpdateProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body UpdateProfileRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		updates := map[string]interface{}{
			"name":       body.Name,
			"address":    body.Address,
			"phone":      body.Phone,
			"picture":    body.Picture,
			"updated_at": time.Now(),
		}
		if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update profile")
		}

		return c.JSON(fiber.Map{"message": "Profile updated successfully"})
	}
}

// PUT /api/change-password
func ChangePasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body ChangePasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.NewPassword == "" {
			return fiber.NewError(fiber.StatusBadRequest, "New password is required")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.CurrentPassword)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Current password is incorrect")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		if err := database.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update password")
		}

		return c.JSON(fiber.Map{"message": "Password changed successfully"})
	}
}

// POST /api/update-activity
// Touches last_active; the frontend pings this periodically.
func UpdateActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		if err := database.DB.Model(&models.User{}).
			Where("id = ?", userID).
			Update("last_active", time.Now()).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update activity")
		}

		return c.JSON(fiber.Map{"message": "Activity updated"})
	}
}
