package models

import (
	"time"

	"github.com/google/uuid"
)

// SectionKey определяет шаблон отрисовки и редактор секции
type SectionKey string

const (
	SectionHero         SectionKey = "hero"
	SectionAbout        SectionKey = "about"
	SectionFeatured     SectionKey = "featured"
	SectionGallery      SectionKey = "gallery"
	SectionFAQ          SectionKey = "faq"
	SectionInfo         SectionKey = "info"
	SectionShop         SectionKey = "shop"
	SectionNewsletter   SectionKey = "newsletter"
	SectionAwards       SectionKey = "awards"
	SectionParcours     SectionKey = "parcours"
	SectionText         SectionKey = "text"
	SectionCTA          SectionKey = "cta"
	SectionForm         SectionKey = "form"
	SectionList         SectionKey = "list"
	SectionLogo         SectionKey = "logo"
	SectionTestimonials SectionKey = "testimonials"
	SectionFooter       SectionKey = "footer"
)

const (
	DefaultBackgroundColor = "#f7f6ec"
	DefaultTextColor       = "#13130d"
	DefaultAccentColor     = "#c9a050"
	DefaultOverlayOpacity  = 0.3
)

// Section - один блок контента страницы
type Section struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	PageName            string     `json:"page_name" db:"page_name"`
	SectionKey          SectionKey `json:"section_key" db:"section_key"`
	SectionOrder        int        `json:"section_order" db:"section_order"`
	IsVisible           bool       `json:"is_visible" db:"is_visible"`
	Title               *string    `json:"title" db:"title"`
	Subtitle            *string    `json:"subtitle" db:"subtitle"`
	Description         *string    `json:"description" db:"description"`
	ButtonText          *string    `json:"button_text" db:"button_text"`
	ButtonLink          *string    `json:"button_link" db:"button_link"`
	ImageURL            *string    `json:"image_url" db:"image_url"`
	ImageOverlayOpacity float64    `json:"image_overlay_opacity" db:"image_overlay_opacity"`
	BackgroundColor     *string    `json:"background_color" db:"background_color"`
	TextColor           *string    `json:"text_color" db:"text_color"`
	AccentColor         *string    `json:"accent_color" db:"accent_color"`
	CustomData          Metadata   `json:"custom_data" db:"custom_data"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// NewSection returns a draft with the editor defaults; it renders before any admin input.
func NewSection(pageName string, key SectionKey, order int) Section {
	return Section{
		PageName:            pageName,
		SectionKey:          key,
		SectionOrder:        order,
		IsVisible:           true,
		ImageOverlayOpacity: DefaultOverlayOpacity,
		BackgroundColor:     StrPtr(DefaultBackgroundColor),
		TextColor:           StrPtr(DefaultTextColor),
		AccentColor:         StrPtr(DefaultAccentColor),
		CustomData:          DefaultCustomData(key),
	}
}

// Clone returns a copy sharing no pointers or custom_data with s.
func (s Section) Clone() Section {
	c := s
	c.Title = clonePtr(s.Title)
	c.Subtitle = clonePtr(s.Subtitle)
	c.Description = clonePtr(s.Description)
	c.ButtonText = clonePtr(s.ButtonText)
	c.ButtonLink = clonePtr(s.ButtonLink)
	c.ImageURL = clonePtr(s.ImageURL)
	c.BackgroundColor = clonePtr(s.BackgroundColor)
	c.TextColor = clonePtr(s.TextColor)
	c.AccentColor = clonePtr(s.AccentColor)
	c.CustomData = s.CustomData.Clone()
	return c
}

// TextField returns the base value of a named text field.
func (s Section) TextField(field string) string {
	switch field {
	case "title":
		return Str(s.Title)
	case "subtitle":
		return Str(s.Subtitle)
	case "description":
		return Str(s.Description)
	case "button_text":
		return Str(s.ButtonText)
	case "button_link":
		return Str(s.ButtonLink)
	default:
		return s.CustomData.String(field)
	}
}

func StrPtr(s string) *string {
	return &s
}

// Str dereferences a nullable string.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// SectionOrder - новая позиция секции при перестановке
type SectionOrder struct {
	ID    uuid.UUID
	Order int
}
