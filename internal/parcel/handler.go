package parcel

import (
	"log"
	"strings"
	"time"

	"lalogistics-backend/internal/audit"
	"lalogistics-backend/internal/auth"
	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/earnings"
	"lalogistics-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateParcelRequest struct {
	TaskID          string         `json:"taskId"`
	SellerID        string         `json:"sellerId"`
	Courier         models.Courier `json:"courier"`
	Quantity        int            `json:"quantity"`
	PickedUpSameDay bool           `json:"pickedUpSameDay"`
	Date            *string        `json:"date"` // "2006-01-02", empty means today
}

func getUserInfo(c *fiber.Ctx) (uint, string, error) {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return 0, "", err
	}
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "User not found")
	}
	return userID, user.Name, nil
}

// POST /api/parcels
// The earning is always computed server-side from the submitted batch; the
// stored value is what this formula said at creation time and is never
// recomputed afterwards.
func CreateParcelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateParcelRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.TaskID = strings.TrimSpace(body.TaskID)
		body.SellerID = strings.TrimSpace(body.SellerID)

		if body.TaskID == "" || body.SellerID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Task ID and Seller ID are required")
		}
		if body.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity must be at least 1")
		}
		if !body.Courier.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Courier must be SPX or Flash")
		}

		// same-day pickup only applies to SPX
		if body.Courier != models.CourierSPX {
			body.PickedUpSameDay = false
		}

		var date time.Time
		if body.Date == nil || *body.Date == "" {
			now := time.Now()
			date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		} else {
			d, err := time.Parse("2006-01-02", *body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			date = d
		}

		userID, userName, err := getUserInfo(c)
		if err != nil {
			return err
		}

		p := models.Parcel{
			TaskID:          body.TaskID,
			SellerID:        body.SellerID,
			Courier:         body.Courier,
			Quantity:        body.Quantity,
			PickedUpSameDay: body.PickedUpSameDay,
			Date:            date,
			TotalEarning:    earnings.Calculate(body.Courier, body.Quantity, body.PickedUpSameDay),
			UserID:          userID,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create parcel entry")
		}

		if err := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "parcel",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: "Parcel batch logged: " + p.TaskID,
			After: fiber.Map{
				"id":            p.ID,
				"task_id":       p.TaskID,
				"seller_id":     p.SellerID,
				"courier":       p.Courier,
				"quantity":      p.Quantity,
				"date":          p.Date.Format("2006-01-02"),
				"total_earning": p.TotalEarning.StringFixed(2),
			},
		}); err != nil {
			// audit failure must not fail the business write
			log.Println("Audit log failed:", err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":              p.ID,
			"taskId":          p.TaskID,
			"sellerId":        p.SellerID,
			"courier":         p.Courier,
			"quantity":        p.Quantity,
			"pickedUpSameDay": p.PickedUpSameDay,
			"date":            p.Date.Format("2006-01-02"),
			"totalEarning":    p.TotalEarning.InexactFloat64(),
		})
	}
}

// DELETE /api/parcels/:id (admin only, hard delete)
func DeleteParcelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid parcel id")
		}

		var p models.Parcel
		if err := database.DB.First(&p, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Parcel entry not found")
		}

		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete parcel entry")
		}

		userID, userName, err := getUserInfo(c)
		if err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "parcel",
				EntityID:    p.ID,
				Action:      models.AuditActionDelete,
				Description: "Parcel batch deleted: " + p.TaskID,
				Before: fiber.Map{
					"id":            p.ID,
					"task_id":       p.TaskID,
					"seller_id":     p.SellerID,
					"courier":       p.Courier,
					"quantity":      p.Quantity,
					"date":          p.Date.Format("2006-01-02"),
					"total_earning": p.TotalEarning.StringFixed(2),
				},
			})
		}

		return c.JSON(fiber.Map{"message": "Parcel entry deleted successfully"})
	}
}
