package main

import (
	"log"
	"os"
	"strings"

	"lalogistics-backend/internal/admin"
	"lalogistics-backend/internal/audit"
	"lalogistics-backend/internal/auth"
	"lalogistics-backend/internal/config"
	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/models"
	"lalogistics-backend/internal/parcel"
	"lalogistics-backend/internal/profile"
	"lalogistics-backend/internal/report"
	"lalogistics-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	if err := os.MkdirAll(cfg.UploadPath, 0o755); err != nil {
		log.Fatalf("Could not create upload directory: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 6 * 1024 * 1024, // uploads are capped at 5MB, leave header room
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Static("/uploads", cfg.UploadPath)

	store := report.NewStore()

	api := app.Group("/api")

	// Public
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/forgot-password", auth.ForgotPasswordHandler())
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "L&A Logistic Services API is running"})
	})

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Profile
	protected.Get("/profile", profile.GetProfileHandler())
	protected.Put("/profile", profile.UpdateProfileHandler())
	protected.Put("/change-password", profile.ChangePasswordHandler())
	protected.Post("/update-activity", profile.UpdateActivityHandler())
	protected.Post("/upload/profile", profile.UploadProfilePictureHandler(cfg))

	// Parcels & reports
	protected.Get("/parcels", report.GetParcelsHandler(store))
	protected.Post("/parcels", parcel.CreateParcelHandler())
	protected.Get("/export/pdf", report.ExportPDFHandler(store))
	protected.Get("/export/excel", report.ExportExcelHandler(store))

	// Admin routes
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Delete("/parcels/:id", parcel.DeleteParcelHandler())

	adminRoutes.Get("/admin/users", admin.ListUsersHandler())
	adminRoutes.Post("/admin/users", admin.CreateUserHandler())
	adminRoutes.Delete("/admin/users/:id", admin.DeleteUserHandler())
	adminRoutes.Get("/admin/employees", admin.ListEmployeesHandler())
	adminRoutes.Put("/admin/employees/:id", admin.UpdateEmployeeHandler())

	adminRoutes.Get("/settings", settings.GetSettingsHandler())
	adminRoutes.Put("/settings", settings.UpdateSettingsHandler())
	adminRoutes.Post("/upload/logo", profile.UploadLogoHandler(cfg))

	adminRoutes.Post("/email/send-report", report.SendReportEmailHandler(store))
	adminRoutes.Post("/email/send-employee-report", admin.SendEmployeeReportHandler())

	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
