package database

import (
	"log"

	"lalogistics-backend/internal/config"
	"lalogistics-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Parcel{},
		&models.Setting{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedSettings()
	seedAdminUser()

	log.Println("Database connected, migration complete.")
}

// seedSettings inserts the default settings rows, skipping keys that
// already exist so admin edits survive restarts.
func seedSettings() {
	defaults := []models.Setting{
		{Key: models.SettingCompanyName, Value: "L&A Logistic Services"},
		{Key: models.SettingCompanyLogo, Value: ""},
		{Key: models.SettingSMTPEnabled, Value: "false"},
		{Key: models.SettingSMTPHost, Value: ""},
		{Key: models.SettingSMTPPort, Value: "587"},
		{Key: models.SettingSMTPUser, Value: ""},
		{Key: models.SettingSMTPPassword, Value: ""},
		{Key: models.SettingSMTPFromEmail, Value: ""},
		{Key: models.SettingSMTPFromName, Value: ""},
	}

	for _, s := range defaults {
		if err := DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&s).Error; err != nil {
			log.Printf("Seeding setting %q failed: %v", s.Key, err)
		}
	}
}

// seedAdminUser creates the bootstrap admin account on a fresh database.
func seedAdminUser() {
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Could not hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "Admin User",
		Email:        "admin@lalogistics.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		EmployeeID:   "ADMIN001",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Could not create default admin user: %v", err)
		return
	}
	log.Println("Default admin user created (admin@lalogistics.com) - change the password immediately")
}
