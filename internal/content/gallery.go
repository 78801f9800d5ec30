package content

import "artiste_site/internal/domain/models"

// GalleryCategories returns the configured categories, or the distinct painting
// categories in first-seen order when none are configured.
func GalleryCategories(data models.GalleryData, paintings []models.Painting) []string {
	if len(data.Categories) > 0 {
		out := make([]string, len(data.Categories))
		copy(out, data.Categories)
		return out
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range paintings {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}

	return out
}
