package content

import (
	"sort"

	"artiste_site/internal/domain/models"
)

const (
	LocaleFR = "fr"
	LocaleEN = "en"
)

// Resolver picks the section a page block renders from a fetched list.
type Resolver struct {
	sections []models.Section
	locale   string
}

// NewResolver expects sections in fetch order (see SortSections).
func NewResolver(sections []models.Section, locale string) *Resolver {
	return &Resolver{
		sections: sections,
		locale:   NormalizeLocale(locale),
	}
}

// Section returns the first visible section with the given key.
func (r *Resolver) Section(key models.SectionKey) (models.Section, bool) {
	for _, s := range r.sections {
		if s.SectionKey == key && s.IsVisible {
			return s, true
		}
	}
	return models.Section{}, false
}

func (r *Resolver) Locale() string {
	return r.locale
}

// Localized returns custom_data[field+"_en"] for the en locale when set, else the base field.
func (r *Resolver) Localized(s models.Section, field string) string {
	return Localized(s, field, r.locale)
}

func Localized(s models.Section, field, locale string) string {
	if NormalizeLocale(locale) == LocaleEN {
		if v := s.CustomData.String(field + "_en"); v != "" {
			return v
		}
	}
	return s.TextField(field)
}

// NormalizeLocale maps anything but "en" to the default French locale.
func NormalizeLocale(locale string) string {
	if locale == LocaleEN {
		return LocaleEN
	}
	return LocaleFR
}

// SortSections orders by section_order; equal orders keep their relative position.
func SortSections(sections []models.Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].SectionOrder < sections[j].SectionOrder
	})
}
