package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidExhibition = errors.New("invalid exhibition")

// CalendarMonth - выставки одного месяца
type CalendarMonth struct {
	Month       string              `json:"month"`
	Exhibitions []models.Exhibition `json:"exhibitions"`
}

type CalendarYear struct {
	Year   int             `json:"year"`
	Months []CalendarMonth `json:"months"`
}

// Calendar: upcoming exhibitions first, then the past grouped by year and month.
type Calendar struct {
	Upcoming []CalendarYear `json:"upcoming"`
	Past     []CalendarYear `json:"past"`
}

type ExhibitionService struct {
	log  *slog.Logger
	repo repository.ExhibitionRepository
	now  func() time.Time
}

func NewExhibitionService(log *slog.Logger, repo repository.ExhibitionRepository) *ExhibitionService {
	return &ExhibitionService{
		log:  log,
		repo: repo,
		now:  time.Now,
	}
}

func (s *ExhibitionService) ListExhibitions(ctx context.Context) ([]models.Exhibition, error) {
	const op = "services.ExhibitionService.ListExhibitions"

	list, err := s.repo.ListExhibitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// is_upcoming пересчитывается на чтении, хранимое значение могло устареть
	now := s.now()
	for i := range list {
		list[i].SyncDateFields(now)
	}

	return list, nil
}

func (s *ExhibitionService) GetExhibition(ctx context.Context, id uuid.UUID) (models.Exhibition, error) {
	const op = "services.ExhibitionService.GetExhibition"

	e, err := s.repo.GetExhibition(ctx, id)
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, err)
	}
	e.SyncDateFields(s.now())

	return e, nil
}

func (s *ExhibitionService) CreateExhibition(ctx context.Context, e models.Exhibition) (models.Exhibition, error) {
	const op = "services.ExhibitionService.CreateExhibition"

	log := s.log.With(slog.String("op", op), slog.String("title", e.Title))

	if err := validateExhibition(e); err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, err)
	}
	e.SyncDateFields(s.now())

	created, err := s.repo.CreateExhibition(ctx, e)
	if err != nil {
		log.Error("failed to create exhibition", sl.Err(err))
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *ExhibitionService) UpdateExhibition(ctx context.Context, e models.Exhibition) (models.Exhibition, error) {
	const op = "services.ExhibitionService.UpdateExhibition"

	if err := validateExhibition(e); err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, err)
	}
	e.SyncDateFields(s.now())

	updated, err := s.repo.UpdateExhibition(ctx, e)
	if err != nil {
		s.log.Error("failed to update exhibition", slog.String("op", op), sl.Err(err))
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *ExhibitionService) DeleteExhibition(ctx context.Context, id uuid.UUID) error {
	const op = "services.ExhibitionService.DeleteExhibition"

	if err := s.repo.DeleteExhibition(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ExhibitionService) Calendar(ctx context.Context) (Calendar, error) {
	const op = "services.ExhibitionService.Calendar"

	list, err := s.ListExhibitions(ctx)
	if err != nil {
		return Calendar{}, fmt.Errorf("%s: %w", op, err)
	}

	return BuildCalendar(list), nil
}

// BuildCalendar groups exhibitions by year then month. Upcoming ones are
// sorted soonest first, past ones most recent first.
func BuildCalendar(list []models.Exhibition) Calendar {
	var upcoming, past []models.Exhibition
	for _, e := range list {
		if e.IsUpcoming {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartDate.After(past[j].StartDate)
	})

	return Calendar{
		Upcoming: group(upcoming),
		Past:     group(past),
	}
}

func group(list []models.Exhibition) []CalendarYear {
	out := []CalendarYear{}
	for _, e := range list {
		if len(out) == 0 || out[len(out)-1].Year != e.Year {
			out = append(out, CalendarYear{Year: e.Year})
		}
		year := &out[len(out)-1]

		if len(year.Months) == 0 || year.Months[len(year.Months)-1].Month != e.Month {
			year.Months = append(year.Months, CalendarMonth{Month: e.Month})
		}
		month := &year.Months[len(year.Months)-1]
		month.Exhibitions = append(month.Exhibitions, e)
	}
	return out
}

func validateExhibition(e models.Exhibition) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidExhibition)
	}
	if e.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", ErrInvalidExhibition)
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("%w: end_date before start_date", ErrInvalidExhibition)
	}
	return nil
}
