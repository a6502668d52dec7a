package report

import (
	"errors"
	"log"
	"time"

	"lalogistics-backend/internal/mailer"
	"lalogistics-backend/internal/models"
	"lalogistics-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
)

type ParcelResponse struct {
	ID              uint           `json:"id"`
	TaskID          string         `json:"taskId"`
	SellerID        string         `json:"sellerId"`
	Courier         models.Courier `json:"courier"`
	Quantity        int            `json:"quantity"`
	PickedUpSameDay bool           `json:"pickedUpSameDay"`
	Date            string         `json:"date"`
	TotalEarning    float64        `json:"totalEarning"`
}

type AggregatedResponse struct {
	Entries       []ParcelResponse `json:"entries"`
	TotalQuantity int              `json:"totalQuantity"`
	TotalEarnings float64          `json:"totalEarnings"`
}

type SendReportRequest struct {
	To         string `json:"to"`
	Subject    string `json:"subject"`
	DateFilter string `json:"dateFilter"`
}

func filterLabel(token string) string {
	switch token {
	case FilterToday, FilterWeek, FilterMonth, FilterYear:
		return token
	}
	return "all"
}

func buildReport(store Store, token string) (*Aggregated, error) {
	return Aggregate(store, ResolveRange(token, time.Now()))
}

// GET /api/parcels?filter=today|week|month|year
// The live table view: entries plus totals, recomputed every request.
func GetParcelsHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep, err := buildReport(store, c.Query("filter"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage error")
		}

		entries := make([]ParcelResponse, 0, len(rep.Entries))
		for _, e := range rep.Entries {
			entries = append(entries, ParcelResponse{
				ID:              e.ID,
				TaskID:          e.TaskID,
				SellerID:        e.SellerID,
				Courier:         e.Courier,
				Quantity:        e.Quantity,
				PickedUpSameDay: e.PickedUpSameDay,
				Date:            e.Date.Format("2006-01-02"),
				TotalEarning:    e.TotalEarning.InexactFloat64(),
			})
		}

		return c.JSON(AggregatedResponse{
			Entries:       entries,
			TotalQuantity: rep.TotalQuantity,
			TotalEarnings: rep.TotalEarnings.InexactFloat64(),
		})
	}
}

// GET /api/export/pdf?filter=
func ExportPDFHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("filter")
		rep, err := buildReport(store, token)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage error")
		}

		snap, err := settings.LoadSnapshot()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}

		out, err := RenderPDF(rep, snap.CompanyName, filterLabel(token))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render PDF")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=parcels-`+filterLabel(token)+`.pdf`)
		return c.Send(out)
	}
}

// GET /api/export/excel?filter=
func ExportExcelHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("filter")
		rep, err := buildReport(store, token)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage error")
		}

		out, err := RenderExcel(rep)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render spreadsheet")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=parcels-`+filterLabel(token)+`.xlsx`)
		return c.Send(out)
	}
}

// POST /api/email/send-report
// Renders the HTML fragment and mails it with the caller-supplied subject
// and recipient.
func SendReportEmailHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SendReportRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.To == "" || body.Subject == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Recipient and subject are required")
		}

		snap, err := settings.LoadSnapshot()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}

		rep, err := buildReport(store, body.DateFilter)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage error")
		}

		html, err := RenderHTML(rep, snap.CompanyName, filterLabel(body.DateFilter))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render report")
		}

		if err := mailer.Send(snap, body.To, body.Subject, html); err != nil {
			if errors.Is(err, mailer.ErrNotConfigured) {
				return fiber.NewError(fiber.StatusBadRequest, "Email is not configured")
			}
			log.Println("Report email failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to send email")
		}

		return c.JSON(fiber.Map{"message": "Report sent successfully"})
	}
}
