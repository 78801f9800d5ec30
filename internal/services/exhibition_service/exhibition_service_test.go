package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"artiste_site/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExhibitionRepository struct {
	mock.Mock
}

func (m *MockExhibitionRepository) ListExhibitions(ctx context.Context) ([]models.Exhibition, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) GetExhibition(ctx context.Context, id uuid.UUID) (models.Exhibition, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) CreateExhibition(ctx context.Context, e models.Exhibition) (models.Exhibition, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(models.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) UpdateExhibition(ctx context.Context, e models.Exhibition) (models.Exhibition, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(models.Exhibition), args.Error(1)
}

func (m *MockExhibitionRepository) DeleteExhibition(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	ctx   = context.Background()
	today = time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(repo *MockExhibitionRepository) *ExhibitionService {
	svc := NewExhibitionService(slog.Default(), repo)
	svc.now = func() time.Time { return today }
	return svc
}

func TestExhibitionService_CreateSyncsDateFields(t *testing.T) {
	repo := new(MockExhibitionRepository)
	repo.On("CreateExhibition", ctx, mock.MatchedBy(func(e models.Exhibition) bool {
		return e.Year == 2026 && e.Month == "Août" && e.Day == 3 && e.IsUpcoming
	})).Return(models.Exhibition{ID: uuid.New()}, nil).Once()

	_, err := newService(repo).CreateExhibition(ctx, models.Exhibition{
		Title:     "Salon d'été",
		StartDate: date(2026, time.August, 3),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestExhibitionService_Validation(t *testing.T) {
	end := date(2026, time.January, 1)

	tests := []struct {
		name string
		e    models.Exhibition
	}{
		{name: "missing title", e: models.Exhibition{StartDate: today}},
		{name: "missing start", e: models.Exhibition{Title: "Salon"}},
		{name: "end before start", e: models.Exhibition{Title: "Salon", StartDate: today, EndDate: &end}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockExhibitionRepository)
			_, err := newService(repo).UpdateExhibition(ctx, tt.e)
			assert.ErrorIs(t, err, ErrInvalidExhibition)
			repo.AssertNotCalled(t, "UpdateExhibition", mock.Anything, mock.Anything)
		})
	}
}

func TestExhibitionService_Calendar(t *testing.T) {
	ongoingEnd := date(2026, time.June, 30)

	repo := new(MockExhibitionRepository)
	repo.On("ListExhibitions", ctx).Return([]models.Exhibition{
		{Title: "Ancienne", StartDate: date(2024, time.March, 2)},
		{Title: "Printemps", StartDate: date(2026, time.April, 10)},
		{Title: "En cours", StartDate: date(2026, time.June, 1), EndDate: &ongoingEnd},
		{Title: "Automne", StartDate: date(2026, time.October, 5)},
		{Title: "Hiver", StartDate: date(2027, time.January, 20)},
		{Title: "Avril bis", StartDate: date(2026, time.April, 25)},
	}, nil).Once()

	cal, err := newService(repo).Calendar(ctx)
	require.NoError(t, err)

	require.Len(t, cal.Upcoming, 2)
	assert.Equal(t, 2026, cal.Upcoming[0].Year)
	require.Len(t, cal.Upcoming[0].Months, 2)
	assert.Equal(t, "Juin", cal.Upcoming[0].Months[0].Month)
	assert.Equal(t, "En cours", cal.Upcoming[0].Months[0].Exhibitions[0].Title)
	assert.Equal(t, "Octobre", cal.Upcoming[0].Months[1].Month)
	assert.Equal(t, 2027, cal.Upcoming[1].Year)

	require.Len(t, cal.Past, 2)
	assert.Equal(t, 2026, cal.Past[0].Year)
	require.Len(t, cal.Past[0].Months, 1)
	assert.Equal(t, "Avril", cal.Past[0].Months[0].Month)
	assert.Equal(t, "Avril bis", cal.Past[0].Months[0].Exhibitions[0].Title)
	assert.Equal(t, 2024, cal.Past[1].Year)
}
