package settings

import (
	"strconv"

	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/models"
)

// SMTP holds the mail account configured by the admin.
type SMTP struct {
	Enabled   bool
	Host      string
	Port      int
	User      string
	Password  string
	FromEmail string
	FromName  string
}

// Snapshot is the settings table read as one typed value. Loaded per
// request and passed down explicitly so renderers and the mailer never
// touch shared mutable state.
type Snapshot struct {
	CompanyName string
	CompanyLogo string
	SMTP        SMTP
}

// FromHeader builds the "Name <address>" From header, falling back to the
// company name when no sender name is configured.
func (s *Snapshot) FromHeader() (name, email string) {
	name = s.SMTP.FromName
	if name == "" {
		name = s.CompanyName
	}
	return name, s.SMTP.FromEmail
}

// LoadSnapshot reads every settings row into a Snapshot.
func LoadSnapshot() (*Snapshot, error) {
	var rows []models.Setting
	if err := database.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	kv := make(map[string]string, len(rows))
	for _, row := range rows {
		kv[row.Key] = row.Value
	}

	port, err := strconv.Atoi(kv[models.SettingSMTPPort])
	if err != nil {
		port = 587
	}

	return &Snapshot{
		CompanyName: kv[models.SettingCompanyName],
		CompanyLogo: kv[models.SettingCompanyLogo],
		SMTP: SMTP{
			Enabled:   kv[models.SettingSMTPEnabled] == "true",
			Host:      kv[models.SettingSMTPHost],
			Port:      port,
			User:      kv[models.SettingSMTPUser],
			Password:  kv[models.SettingSMTPPassword],
			FromEmail: kv[models.SettingSMTPFromEmail],
			FromName:  kv[models.SettingSMTPFromName],
		},
	}, nil
}
