package admin

import (
	"errors"
	"log"
	"strings"

	"lalogistics-backend/internal/audit"
	"lalogistics-backend/internal/auth"
	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type UserResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt string          `json:"createdAt"`
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load users")
		}

		out := make([]UserResponse, 0, len(users))
		for _, u := range users {
			out = append(out, UserResponse{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Role:      u.Role,
				CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(out)
	}
}

// POST /api/admin/users
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, email and password are required")
		}

		switch body.Role {
		case models.RoleAdmin, models.RoleEmployee:
		case "":
			body.Role = models.RoleEmployee
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Role must be admin or employee")
		}

		var count int64
		database.DB.Model(&models.User{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Email already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         body.Role,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create user")
		}

		if adminID, err := auth.CurrentUserID(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      adminID,
				EntityType:  "user",
				EntityID:    user.ID,
				Action:      models.AuditActionCreate,
				Description: "User created: " + user.Email,
				After:       fiber.Map{"id": user.ID, "email": user.Email, "role": user.Role},
			}); logErr != nil {
				log.Println("Audit log failed:", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}

// DELETE /api/admin/users/:id
// Admin accounts cannot be deleted through the API.
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}

		var user models.User
		if err := database.DB.Where("id = ? AND role != ?", id, models.RoleAdmin).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found or cannot delete admin")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load user")
		}

		if err := database.DB.Delete(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete user")
		}

		if adminID, err := auth.CurrentUserID(c); err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      adminID,
				EntityType:  "user",
				EntityID:    user.ID,
				Action:      models.AuditActionDelete,
				Description: "User deleted: " + user.Email,
				Before:      fiber.Map{"id": user.ID, "email": user.Email, "role": user.Role},
			}); logErr != nil {
				log.Println("Audit log failed:", logErr)
			}
		}

		return c.JSON(fiber.Map{"message": "User deleted successfully"})
	}
}
