package dto

import "artiste_site/internal/domain/models"

type CreateSectionRequest struct {
	SectionKey models.SectionKey `json:"section_key" validate:"required,oneof=hero about featured gallery faq info shop newsletter awards parcours text cta form list logo testimonials footer"`
}

// UpdateSectionRequest перезаписывает секцию целиком, как это делает автосохранение
type UpdateSectionRequest struct {
	IsVisible           bool            `json:"is_visible"`
	Title               *string         `json:"title" validate:"omitempty,max=500"`
	Subtitle            *string         `json:"subtitle" validate:"omitempty,max=500"`
	Description         *string         `json:"description"`
	ButtonText          *string         `json:"button_text" validate:"omitempty,max=100"`
	ButtonLink          *string         `json:"button_link" validate:"omitempty,max=500"`
	ImageURL            *string         `json:"image_url" validate:"omitempty,max=1000"`
	ImageOverlayOpacity float64         `json:"image_overlay_opacity" validate:"gte=0,lte=1"`
	BackgroundColor     *string         `json:"background_color" validate:"omitempty,hexcolor"`
	TextColor           *string         `json:"text_color" validate:"omitempty,hexcolor"`
	AccentColor         *string         `json:"accent_color" validate:"omitempty,hexcolor"`
	CustomData          models.Metadata `json:"custom_data"`
}

// Apply keeps identity fields of current and replaces the editable ones.
func (r UpdateSectionRequest) Apply(current models.Section) models.Section {
	s := current.Clone()
	s.IsVisible = r.IsVisible
	s.Title = r.Title
	s.Subtitle = r.Subtitle
	s.Description = r.Description
	s.ButtonText = r.ButtonText
	s.ButtonLink = r.ButtonLink
	s.ImageURL = r.ImageURL
	s.ImageOverlayOpacity = r.ImageOverlayOpacity
	s.BackgroundColor = r.BackgroundColor
	s.TextColor = r.TextColor
	s.AccentColor = r.AccentColor
	if r.CustomData != nil {
		s.CustomData = r.CustomData.Clone()
	}
	return s
}

type VisibilityRequest struct {
	IsVisible *bool `json:"is_visible" validate:"required"`
}

type MoveSectionRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}
