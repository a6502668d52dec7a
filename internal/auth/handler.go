package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"lalogistics-backend/internal/config"
	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/mailer"
	"lalogistics-backend/internal/models"
	"lalogistics-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		return c.JSON(fiber.Map{
			"user_id": user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role,
		})
	}
}

// POST /api/forgot-password
// Resets the account to a random temporary password and emails it. The
// response never reveals whether the address exists.
func ForgotPasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ForgotPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return c.JSON(fiber.Map{
				"message": "If an account with that email exists, password reset instructions have been sent.",
			})
		}

		snap, err := settings.LoadSnapshot()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}
		if !snap.SMTP.Enabled {
			return fiber.NewError(fiber.StatusBadRequest, "Email is not configured. Please contact administrator.")
		}

		tempPassword, err := randomPassword()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate password")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		if err := database.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update password")
		}

		company := snap.CompanyName
		if company == "" {
			company = "L&A Logistics"
		}

		html := fmt.Sprintf(`
			<h1>%s</h1>
			<h2>Password Reset</h2>
			<p>Hello %s,</p>
			<p>Your password has been reset. Here are your new login credentials:</p>
			<div style="background-color: #f0f0f0; padding: 15px; border-radius: 5px; margin: 15px 0;">
				<strong>Email:</strong> %s<br>
				<strong>New Password:</strong> %s
			</div>
			<p><strong>Important:</strong> Please log in with this temporary password and change it immediately from your profile page.</p>
			<p>If you did not request this password reset, please contact the administrator immediately.</p>
			<p>Best regards,<br>%s Team</p>`,
			company, user.Name, user.Email, tempPassword, company)

		if err := mailer.Send(snap, user.Email, "Password Reset - "+company, html); err != nil {
			log.Println("Password reset email failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to send reset email. Please contact administrator.")
		}

		return c.JSON(fiber.Map{"message": "Password reset instructions have been sent to your email."})
	}
}

func randomPassword() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
