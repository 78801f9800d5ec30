package models

import "time"

// Settings - единственная строка настроек сайта
type Settings struct {
	SiteName      string    `json:"site_name" db:"site_name"`
	LogoURL       string    `json:"logo_url" db:"logo_url"`
	ContactEmail  string    `json:"contact_email" db:"contact_email"`
	Phone         string    `json:"phone" db:"phone"`
	Instagram     string    `json:"instagram" db:"instagram"`
	Facebook      string    `json:"facebook" db:"facebook"`
	FooterText    string    `json:"footer_text" db:"footer_text"`
	FooterTextEn  string    `json:"footer_text_en" db:"footer_text_en"`
	DefaultLocale string    `json:"default_locale" db:"default_locale"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
