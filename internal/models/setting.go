package models

import "time"

// Setting is a single key/value row of the shared configuration table
// (company identity, SMTP account). Read as a snapshot per request, never
// held in process globals.
type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"size:100;uniqueIndex;not null"`
	Value     string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Setting keys seeded at startup.
const (
	SettingCompanyName   = "company_name"
	SettingCompanyLogo   = "company_logo"
	SettingSMTPEnabled   = "smtp_enabled"
	SettingSMTPHost      = "smtp_host"
	SettingSMTPPort      = "smtp_port"
	SettingSMTPUser      = "smtp_user"
	SettingSMTPPassword  = "smtp_password"
	SettingSMTPFromEmail = "smtp_from_email"
	SettingSMTPFromName  = "smtp_from_name"
)
