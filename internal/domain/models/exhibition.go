package models

import (
	"time"

	"github.com/google/uuid"
)

var frenchMonths = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// Exhibition - событие календаря; year/month/day денормализованы из start_date
type Exhibition struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Location    string     `json:"location" db:"location"`
	StartDate   time.Time  `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date" db:"end_date"`
	Description string     `json:"description" db:"description"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	IsUpcoming  bool       `json:"is_upcoming" db:"is_upcoming"`
	Year        int        `json:"year" db:"year"`
	Month       string     `json:"month" db:"month"`
	Day         int        `json:"day" db:"day"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// FrenchMonth returns the display name used in the calendar.
func FrenchMonth(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return frenchMonths[m-1]
}

// SyncDateFields recomputes the display fields from StartDate/EndDate relative to now.
func (e *Exhibition) SyncDateFields(now time.Time) {
	e.Year = e.StartDate.Year()
	e.Month = FrenchMonth(e.StartDate.Month())
	e.Day = e.StartDate.Day()

	end := e.StartDate
	if e.EndDate != nil {
		end = *e.EndDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	e.IsUpcoming = !end.Before(today)
}
