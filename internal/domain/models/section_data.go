package models

import (
	"strconv"
	"strings"
)

// SectionPayload - типизированное содержимое custom_data, вариант выбирается по section_key
type SectionPayload interface {
	// Apply writes the typed fields into raw, keeping keys the variant does not own.
	Apply(raw Metadata) Metadata
}

// HeroData - портрет и английские версии текстов героя
type HeroData struct {
	PortraitURL   string  `json:"portrait_url"`
	Zoom          float64 `json:"zoom"`
	PositionX     float64 `json:"position_x"`
	PositionY     float64 `json:"position_y"`
	Uploading     bool    `json:"uploading"`
	TitleEn       string  `json:"title_en"`
	SubtitleEn    string  `json:"subtitle_en"`
	DescriptionEn string  `json:"description_en"`
	ButtonTextEn  string  `json:"button_text_en"`
}

type FAQItem struct {
	Q   string `json:"q"`
	A   string `json:"a"`
	QEn string `json:"q_en,omitempty"`
	AEn string `json:"a_en,omitempty"`
}

type FAQData struct {
	Questions []FAQItem `json:"questions"`
}

type GalleryData struct {
	Categories []string `json:"categories"`
	AllLabel   string   `json:"allLabel"`
}

// ContactData используется секциями about и info
type ContactData struct {
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Hours     string `json:"hours"`
	AddressEn string `json:"address_en,omitempty"`
	HoursEn   string `json:"hours_en,omitempty"`
}

type Testimonial struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
}

type TestimonialsData struct {
	Testimonials []Testimonial `json:"testimonials"`
}

// RawData - custom_data секций без собственной схемы
type RawData struct {
	Fields Metadata `json:"fields"`
}

const DefaultGalleryAllLabel = "Tout"

// DefaultCustomData returns the empty typed custom_data seeded for a new section.
func DefaultCustomData(key SectionKey) Metadata {
	switch key {
	case SectionFAQ:
		return FAQData{Questions: []FAQItem{}}.Apply(nil)
	case SectionGallery:
		return GalleryData{Categories: []string{}, AllLabel: DefaultGalleryAllLabel}.Apply(nil)
	case SectionTestimonials:
		return TestimonialsData{Testimonials: []Testimonial{}}.Apply(nil)
	case SectionHero:
		return HeroData{Zoom: 1, PositionX: 50, PositionY: 50}.Apply(nil)
	default:
		return Metadata{}
	}
}

// DecodePayload coerces stored custom_data into the variant for key.
// Missing or mistyped fields fall back to zero values instead of failing.
func DecodePayload(key SectionKey, raw Metadata) SectionPayload {
	switch key {
	case SectionHero:
		return HeroData{
			PortraitURL:   getString(raw, "portrait_url"),
			Zoom:          getFloat(raw, "zoom", 1),
			PositionX:     getFloat(raw, "position_x", 50),
			PositionY:     getFloat(raw, "position_y", 50),
			Uploading:     getBool(raw, "uploading"),
			TitleEn:       getString(raw, "title_en"),
			SubtitleEn:    getString(raw, "subtitle_en"),
			DescriptionEn: getString(raw, "description_en"),
			ButtonTextEn:  getString(raw, "button_text_en"),
		}
	case SectionFAQ:
		data := FAQData{Questions: []FAQItem{}}
		for _, item := range getObjects(raw, "questions") {
			data.Questions = append(data.Questions, FAQItem{
				Q:   getString(item, "q"),
				A:   getString(item, "a"),
				QEn: getString(item, "q_en"),
				AEn: getString(item, "a_en"),
			})
		}
		return data
	case SectionGallery:
		label := getString(raw, "allLabel")
		if label == "" {
			label = DefaultGalleryAllLabel
		}
		return GalleryData{Categories: getStrings(raw, "categories"), AllLabel: label}
	case SectionAbout, SectionInfo:
		return ContactData{
			Phone:     getString(raw, "phone"),
			Email:     getString(raw, "email"),
			Address:   getString(raw, "address"),
			Hours:     getString(raw, "hours"),
			AddressEn: getString(raw, "address_en"),
			HoursEn:   getString(raw, "hours_en"),
		}
	case SectionTestimonials:
		data := TestimonialsData{Testimonials: []Testimonial{}}
		for _, item := range getObjects(raw, "testimonials") {
			data.Testimonials = append(data.Testimonials, Testimonial{
				Title:  getString(item, "title"),
				Text:   getString(item, "text"),
				Author: getString(item, "author"),
				Rating: int(getFloat(item, "rating", 0)),
			})
		}
		return data
	default:
		return RawData{Fields: raw.Clone()}
	}
}

func (d HeroData) Apply(raw Metadata) Metadata {
	out := raw.Clone()
	out["portrait_url"] = d.PortraitURL
	out["zoom"] = d.Zoom
	out["position_x"] = d.PositionX
	out["position_y"] = d.PositionY
	out["uploading"] = d.Uploading
	out["title_en"] = d.TitleEn
	out["subtitle_en"] = d.SubtitleEn
	out["description_en"] = d.DescriptionEn
	out["button_text_en"] = d.ButtonTextEn
	return out
}

func (d FAQData) Apply(raw Metadata) Metadata {
	out := raw.Clone()
	questions := make([]interface{}, 0, len(d.Questions))
	for _, q := range d.Questions {
		item := map[string]interface{}{"q": q.Q, "a": q.A}
		if q.QEn != "" {
			item["q_en"] = q.QEn
		}
		if q.AEn != "" {
			item["a_en"] = q.AEn
		}
		questions = append(questions, item)
	}
	out["questions"] = questions
	return out
}

func (d GalleryData) Apply(raw Metadata) Metadata {
	out := raw.Clone()
	categories := make([]interface{}, 0, len(d.Categories))
	for _, c := range d.Categories {
		categories = append(categories, c)
	}
	out["categories"] = categories
	out["allLabel"] = d.AllLabel
	return out
}

func (d ContactData) Apply(raw Metadata) Metadata {
	out := raw.Clone()
	out["phone"] = d.Phone
	out["email"] = d.Email
	out["address"] = d.Address
	out["hours"] = d.Hours
	if d.AddressEn != "" {
		out["address_en"] = d.AddressEn
	}
	if d.HoursEn != "" {
		out["hours_en"] = d.HoursEn
	}
	return out
}

func (d TestimonialsData) Apply(raw Metadata) Metadata {
	out := raw.Clone()
	items := make([]interface{}, 0, len(d.Testimonials))
	for _, t := range d.Testimonials {
		items = append(items, map[string]interface{}{
			"title":  t.Title,
			"text":   t.Text,
			"author": t.Author,
			"rating": t.Rating,
		})
	}
	out["testimonials"] = items
	return out
}

func (d RawData) Apply(raw Metadata) Metadata {
	out := raw.Clone()
	for k, v := range d.Fields.Clone() {
		out[k] = v
	}
	return out
}

func getString(m Metadata, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func getFloat(m Metadata, key string, def float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(m Metadata, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

func getStrings(m Metadata, key string) []string {
	out := []string{}
	switch v := m[key].(type) {
	case []string:
		out = append(out, v...)
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func getObjects(m Metadata, key string) []Metadata {
	var out []Metadata
	switch v := m[key].(type) {
	case []interface{}:
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				out = append(out, Metadata(obj))
			}
		}
	case []map[string]interface{}:
		for _, obj := range v {
			out = append(out, Metadata(obj))
		}
	}
	return out
}
