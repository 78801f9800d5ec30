package dto

import (
	"time"

	"artiste_site/internal/domain/models"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ExhibitionRequest struct {
	Title       string `json:"title" validate:"required,max=300"`
	Location    string `json:"location" validate:"omitempty,max=300"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=1000"`
}

// ToDomain expects dates already checked by the validator.
func (r ExhibitionRequest) ToDomain(id uuid.UUID) (models.Exhibition, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return models.Exhibition{}, err
	}

	e := models.Exhibition{
		ID:          id,
		Title:       r.Title,
		Location:    r.Location,
		StartDate:   start,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}

	if r.EndDate != "" {
		end, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return models.Exhibition{}, err
		}
		e.EndDate = &end
	}

	return e, nil
}
