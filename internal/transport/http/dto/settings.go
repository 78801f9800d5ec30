package dto

import "artiste_site/internal/domain/models"

type SettingsRequest struct {
	SiteName      string `json:"site_name" validate:"required,max=200"`
	LogoURL       string `json:"logo_url" validate:"omitempty,max=1000"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"omitempty,max=32"`
	Instagram     string `json:"instagram" validate:"omitempty,url"`
	Facebook      string `json:"facebook" validate:"omitempty,url"`
	FooterText    string `json:"footer_text"`
	FooterTextEn  string `json:"footer_text_en"`
	DefaultLocale string `json:"default_locale" validate:"omitempty,oneof=fr en"`
}

func (r SettingsRequest) ToDomain() models.Settings {
	return models.Settings{
		SiteName:      r.SiteName,
		LogoURL:       r.LogoURL,
		ContactEmail:  r.ContactEmail,
		Phone:         r.Phone,
		Instagram:     r.Instagram,
		Facebook:      r.Facebook,
		FooterText:    r.FooterText,
		FooterTextEn:  r.FooterTextEn,
		DefaultLocale: r.DefaultLocale,
	}
}
