package profile

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"lalogistics-backend/internal/auth"
	"lalogistics-backend/internal/config"
	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

func saveImage(c *fiber.Ctx, cfg *config.Config, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
	}
	if fileHeader.Size > maxUploadSize {
		return "", fiber.NewError(fiber.StatusBadRequest, "File exceeds the 5MB limit")
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return "", fiber.NewError(fiber.StatusBadRequest, "Only image files are allowed")
	}

	filename := fmt.Sprintf("%s-%d-%d%s",
		field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(fileHeader.Filename))

	if err := c.SaveFile(fileHeader, filepath.Join(cfg.UploadPath, filename)); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Could not save file")
	}

	return "/uploads/" + filename, nil
}

// POST /api/upload/profile
func UploadProfilePictureHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		url, err := saveImage(c, cfg, "profile")
		if err != nil {
			return err
		}

		if err := database.DB.Model(&models.User{}).
			Where("id = ?", userID).
			Update("picture", url).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update profile picture")
		}

		return c.JSON(fiber.Map{
			"message":    "Profile picture uploaded successfully",
			"profileUrl": url,
		})
	}
}

// POST /api/upload/logo (admin only)
func UploadLogoHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := saveImage(c, cfg, "logo")
		if err != nil {
			return err
		}

		if err := database.DB.Model(&models.Setting{}).
			Where("key = ?", models.SettingCompanyLogo).
			Updates(map[string]interface{}{"value": url, "updated_at": time.Now()}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update company logo")
		}

		return c.JSON(fiber.Map{
			"message": "Logo uploaded successfully",
			"logoUrl": url,
		})
	}
}
