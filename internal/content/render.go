package content

import (
	"strconv"

	"artiste_site/internal/domain/models"
)

// Palette - цвета шаблона
type Palette struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

// Overlay is drawn between the image and the text layers.
type Overlay struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// RenderedSection - модель, которую публичная страница отдаёт клиенту
type RenderedSection struct {
	ID          string                `json:"id"`
	Template    models.SectionKey     `json:"template"`
	Order       int                   `json:"order"`
	Title       string                `json:"title,omitempty"`
	TitleLines  []string              `json:"title_lines,omitempty"`
	Subtitle    string                `json:"subtitle,omitempty"`
	Description string                `json:"description,omitempty"`
	ButtonText  string                `json:"button_text,omitempty"`
	ButtonLink  string                `json:"button_link,omitempty"`
	ImageURL    string                `json:"image_url,omitempty"`
	Overlay     *Overlay              `json:"overlay,omitempty"`
	Palette     Palette               `json:"palette"`
	Payload     models.SectionPayload `json:"payload"`
	Categories  []string              `json:"categories,omitempty"`
}

var (
	lightPalette = Palette{
		Background: models.DefaultBackgroundColor,
		Text:       models.DefaultTextColor,
		Accent:     models.DefaultAccentColor,
	}
	darkPalette = Palette{
		Background: models.DefaultTextColor,
		Text:       models.DefaultBackgroundColor,
		Accent:     models.DefaultAccentColor,
	}
	accentPalette = Palette{
		Background: models.DefaultAccentColor,
		Text:       models.DefaultTextColor,
		Accent:     models.DefaultTextColor,
	}
	heroPalette = Palette{
		Background: "transparent",
		Text:       "#ffffff",
		Accent:     models.DefaultAccentColor,
	}
)

// TemplatePalette returns the fallback colours of a template.
func TemplatePalette(key models.SectionKey) Palette {
	switch key {
	case models.SectionHero:
		return heroPalette
	case models.SectionAwards, models.SectionParcours, models.SectionFooter, models.SectionLogo:
		return darkPalette
	case models.SectionNewsletter, models.SectionCTA:
		return accentPalette
	default:
		return lightPalette
	}
}

// ResolvePalette applies the section colours over the template defaults.
func ResolvePalette(s models.Section) Palette {
	p := TemplatePalette(s.SectionKey)
	if v := models.Str(s.BackgroundColor); v != "" {
		p.Background = v
	}
	if v := models.Str(s.TextColor); v != "" {
		p.Text = v
	}
	if v := models.Str(s.AccentColor); v != "" {
		p.Accent = v
	}
	return p
}

// OverlayFor returns nil when the section has no image.
func OverlayFor(s models.Section) *Overlay {
	if models.Str(s.ImageURL) == "" {
		return nil
	}
	opacity := ClampOpacity(s.ImageOverlayOpacity)
	return &Overlay{
		Color:   "rgba(0,0,0," + strconv.FormatFloat(opacity, 'f', -1, 64) + ")",
		Opacity: opacity,
	}
}

func ClampOpacity(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Render builds the template model of one section.
func Render(s models.Section, locale string) RenderedSection {
	out := RenderedSection{
		ID:          s.ID.String(),
		Template:    s.SectionKey,
		Order:       s.SectionOrder,
		Title:       Localized(s, "title", locale),
		Subtitle:    Localized(s, "subtitle", locale),
		Description: Localized(s, "description", locale),
		ButtonText:  Localized(s, "button_text", locale),
		ButtonLink:  models.Str(s.ButtonLink),
		ImageURL:    models.Str(s.ImageURL),
		Overlay:     OverlayFor(s),
		Palette:     ResolvePalette(s),
		Payload:     models.DecodePayload(s.SectionKey, s.CustomData),
	}

	if s.SectionKey == models.SectionHero {
		first, second := SplitTitle(out.Title)
		out.TitleLines = []string{first, second}
		if hero, ok := out.Payload.(models.HeroData); ok && out.ImageURL == "" && hero.PortraitURL != "" {
			out.ImageURL = hero.PortraitURL
			out.Overlay = OverlayFor(withImage(s, hero.PortraitURL))
		}
	}

	if NormalizeLocale(locale) == LocaleEN {
		out.Payload = localizePayload(out.Payload)
	}

	return out
}

// RenderPage renders the first visible section of every key, in fetch order.
// paintings feed the gallery category fallback.
func RenderPage(sections []models.Section, locale string, paintings []models.Painting) []RenderedSection {
	r := NewResolver(sections, locale)

	seen := make(map[models.SectionKey]struct{})
	out := make([]RenderedSection, 0, len(sections))
	for _, s := range sections {
		if _, ok := seen[s.SectionKey]; ok {
			continue
		}
		picked, ok := r.Section(s.SectionKey)
		if !ok {
			continue
		}
		seen[s.SectionKey] = struct{}{}

		rendered := Render(picked, r.Locale())
		if g, ok := rendered.Payload.(models.GalleryData); ok {
			rendered.Categories = GalleryCategories(g, paintings)
		}
		out = append(out, rendered)
	}

	return out
}

func localizePayload(p models.SectionPayload) models.SectionPayload {
	switch v := p.(type) {
	case models.FAQData:
		out := models.FAQData{Questions: make([]models.FAQItem, len(v.Questions))}
		for i, q := range v.Questions {
			if q.QEn != "" {
				q.Q = q.QEn
			}
			if q.AEn != "" {
				q.A = q.AEn
			}
			out.Questions[i] = q
		}
		return out
	case models.ContactData:
		if v.AddressEn != "" {
			v.Address = v.AddressEn
		}
		if v.HoursEn != "" {
			v.Hours = v.HoursEn
		}
		return v
	default:
		return p
	}
}

func withImage(s models.Section, url string) models.Section {
	s.ImageURL = &url
	return s
}

