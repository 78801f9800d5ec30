package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"
	"artiste_site/internal/storage"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSectionRepository struct {
	mock.Mock
}

func (m *MockSectionRepository) ListSections(ctx context.Context, pageName string) ([]models.Section, error) {
	args := m.Called(ctx, pageName)
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockSectionRepository) ListPages(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSectionRepository) GetSection(ctx context.Context, id uuid.UUID) (models.Section, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSectionRepository) CreateSection(ctx context.Context, section models.Section) (models.Section, error) {
	args := m.Called(ctx, section)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSectionRepository) UpdateSection(ctx context.Context, section models.Section) (models.Section, error) {
	args := m.Called(ctx, section)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSectionRepository) SetSectionVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	args := m.Called(ctx, id, visible)
	return args.Error(0)
}

func (m *MockSectionRepository) DeleteSection(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSectionRepository) SwapSectionOrder(ctx context.Context, first, second models.SectionOrder) error {
	args := m.Called(ctx, first, second)
	return args.Error(0)
}

type MockPaintingRepository struct {
	mock.Mock
}

func (m *MockPaintingRepository) ListPaintings(ctx context.Context, filter models.PaintingFilter) ([]models.Painting, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) GetPainting(ctx context.Context, id uuid.UUID) (models.Painting, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) CreatePainting(ctx context.Context, p models.Painting) (models.Painting, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) UpdatePainting(ctx context.Context, p models.Painting) (models.Painting, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) DeletePainting(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaintingRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type recordedEvent struct {
	page  string
	event string
}

type fakePreview struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *fakePreview) Publish(page, eventType string, _ interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{page: page, event: eventType})
}

var ctx = context.Background()

func homeSections() []models.Section {
	hero := models.NewSection("home", models.SectionHero, 0)
	hero.ID = uuid.New()
	hero.Title = models.StrPtr("Marie|Dupont")

	about := models.NewSection("home", models.SectionAbout, 1)
	about.ID = uuid.New()

	faq := models.NewSection("home", models.SectionFAQ, 2)
	faq.ID = uuid.New()

	return []models.Section{hero, about, faq}
}

func newTestService(repo *MockSectionRepository, paintings *MockPaintingRepository, preview *fakePreview) *SectionService {
	return NewSectionService(slog.Default(), repo, paintings, cache.New(time.Minute, time.Minute), preview)
}

func ids(list []models.Section) []uuid.UUID {
	out := make([]uuid.UUID, len(list))
	for i := range list {
		out[i] = list[i].ID
	}
	return out
}

func TestSectionService_AdminSectionsLoadsOnce(t *testing.T) {
	repo := new(MockSectionRepository)
	sections := homeSections()
	repo.On("ListSections", ctx, "home").Return(sections, nil).Once()

	svc := newTestService(repo, new(MockPaintingRepository), &fakePreview{})

	first, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)
	first[0].Title = models.StrPtr("changed")

	second, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Marie|Dupont", models.Str(second[0].Title))

	repo.AssertExpectations(t)
}

func TestSectionService_CreateSection(t *testing.T) {
	repo := new(MockSectionRepository)
	preview := &fakePreview{}
	sections := homeSections()
	repo.On("ListSections", ctx, "home").Return(sections, nil).Once()

	svc := newTestService(repo, new(MockPaintingRepository), preview)

	repo.On("CreateSection", ctx, mock.MatchedBy(func(s models.Section) bool {
		return s.SectionKey == models.SectionGallery && s.SectionOrder == 3 && s.IsVisible &&
			models.Str(s.BackgroundColor) == models.DefaultBackgroundColor
	})).Return(func() models.Section {
		s := models.NewSection("home", models.SectionGallery, 3)
		s.ID = uuid.New()
		return s
	}(), nil).Once()

	created, err := svc.CreateSection(ctx, "home", models.SectionGallery)
	require.NoError(t, err)

	list, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, created.ID, list[3].ID)
	assert.Equal(t, []recordedEvent{{page: "home", event: EventSectionCreated}}, preview.events)

	repo.AssertExpectations(t)
}

func TestSectionService_MoveSection(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		dir       Direction
		mockSetup func(repo *MockSectionRepository, list []models.Section)
		wantOrder func(list []models.Section) []uuid.UUID
		wantErr   bool
	}{
		{
			name:  "move up swaps with previous",
			index: 1,
			dir:   MoveUp,
			mockSetup: func(repo *MockSectionRepository, list []models.Section) {
				repo.On("SwapSectionOrder", ctx,
					models.SectionOrder{ID: list[1].ID, Order: 0},
					models.SectionOrder{ID: list[0].ID, Order: 1},
				).Return(nil).Once()
			},
			wantOrder: func(list []models.Section) []uuid.UUID {
				return []uuid.UUID{list[1].ID, list[0].ID, list[2].ID}
			},
		},
		{
			name:  "move down swaps with next",
			index: 1,
			dir:   MoveDown,
			mockSetup: func(repo *MockSectionRepository, list []models.Section) {
				repo.On("SwapSectionOrder", ctx,
					models.SectionOrder{ID: list[1].ID, Order: 2},
					models.SectionOrder{ID: list[2].ID, Order: 1},
				).Return(nil).Once()
			},
			wantOrder: func(list []models.Section) []uuid.UUID {
				return []uuid.UUID{list[0].ID, list[2].ID, list[1].ID}
			},
		},
		{
			name:      "first section cannot move up",
			index:     0,
			dir:       MoveUp,
			mockSetup: func(repo *MockSectionRepository, list []models.Section) {},
			wantOrder: ids,
		},
		{
			name:      "last section cannot move down",
			index:     2,
			dir:       MoveDown,
			mockSetup: func(repo *MockSectionRepository, list []models.Section) {},
			wantOrder: ids,
		},
		{
			name:  "failed write keeps local order",
			index: 2,
			dir:   MoveUp,
			mockSetup: func(repo *MockSectionRepository, list []models.Section) {
				repo.On("SwapSectionOrder", ctx, mock.Anything, mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantOrder: ids,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSectionRepository)
			sections := homeSections()
			repo.On("ListSections", ctx, "home").Return(sections, nil).Once()
			tt.mockSetup(repo, sections)

			svc := newTestService(repo, new(MockPaintingRepository), &fakePreview{})
			_, err := svc.AdminSections(ctx, "home")
			require.NoError(t, err)

			_, err = svc.MoveSection(ctx, sections[tt.index].ID, tt.dir)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			list, err := svc.AdminSections(ctx, "home")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder(sections), ids(list))

			repo.AssertExpectations(t)
		})
	}
}

func TestSectionService_MoveSectionEqualOrders(t *testing.T) {
	repo := new(MockSectionRepository)
	a := models.NewSection("home", models.SectionHero, 4)
	a.ID = uuid.New()
	b := models.NewSection("home", models.SectionAbout, 4)
	b.ID = uuid.New()
	repo.On("ListSections", ctx, "home").Return([]models.Section{a, b}, nil).Once()
	repo.On("SwapSectionOrder", ctx,
		models.SectionOrder{ID: b.ID, Order: 4},
		models.SectionOrder{ID: a.ID, Order: 5},
	).Return(nil).Once()

	svc := newTestService(repo, new(MockPaintingRepository), &fakePreview{})
	_, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)

	list, err := svc.MoveSection(ctx, b.ID, MoveUp)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, ids(list))

	repo.AssertExpectations(t)
}

func TestSectionService_DuplicateSection(t *testing.T) {
	repo := new(MockSectionRepository)
	sections := homeSections()
	sections[2].CustomData = models.FAQData{Questions: []models.FAQItem{{Q: "Prix ?", A: "Sur demande"}}}.
		Apply(sections[2].CustomData)
	repo.On("ListSections", ctx, "home").Return(sections, nil).Once()

	svc := newTestService(repo, new(MockPaintingRepository), &fakePreview{})
	_, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)

	var sent models.Section
	repo.On("CreateSection", ctx, mock.AnythingOfType("models.Section")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(models.Section) }).
		Return(models.Section{}, nil).Once()

	_, err = svc.DuplicateSection(ctx, sections[2].ID)
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, sent.ID)
	assert.Equal(t, "(copie)", models.Str(sent.Title))
	assert.Equal(t, 3, sent.SectionOrder)

	// правки вложенного списка копии не затрагивают оригинал
	questions := sent.CustomData["questions"].([]interface{})
	questions[0].(map[string]interface{})["q"] = "Délais ?"
	sent.CustomData["questions"] = append(questions, map[string]interface{}{"q": "Cadre ?", "a": "Non"})

	original, err := svc.GetSection(ctx, sections[2].ID)
	require.NoError(t, err)
	data := models.DecodePayload(models.SectionFAQ, original.CustomData).(models.FAQData)
	require.Len(t, data.Questions, 1)
	assert.Equal(t, "Prix ?", data.Questions[0].Q)

	repo.AssertExpectations(t)
}

func TestDuplicateTitle(t *testing.T) {
	assert.Equal(t, "(copie)", duplicateTitle(""))
	assert.Equal(t, "(copie)", duplicateTitle("  "))
	assert.Equal(t, "Atelier (copie)", duplicateTitle("Atelier"))
}

func TestSectionService_SetVisibilityAndDelete(t *testing.T) {
	repo := new(MockSectionRepository)
	sections := homeSections()
	repo.On("ListSections", ctx, "home").Return(sections, nil).Once()
	repo.On("SetSectionVisibility", ctx, sections[1].ID, false).Return(nil).Once()
	repo.On("DeleteSection", ctx, sections[2].ID).Return(nil).Once()
	repo.On("DeleteSection", ctx, sections[0].ID).Return(storage.ErrNotFound).Once()

	svc := newTestService(repo, new(MockPaintingRepository), &fakePreview{})
	_, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)

	hidden, err := svc.SetVisibility(ctx, sections[1].ID, false)
	require.NoError(t, err)
	assert.False(t, hidden.IsVisible)

	require.NoError(t, svc.DeleteSection(ctx, sections[2].ID))

	err = svc.DeleteSection(ctx, sections[0].ID)
	assert.True(t, IsNotFound(err))

	list, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[1].IsVisible)

	repo.AssertExpectations(t)
}

func TestSectionService_PublicPageCache(t *testing.T) {
	repo := new(MockSectionRepository)
	paintings := new(MockPaintingRepository)
	preview := &fakePreview{}

	sections := homeSections()
	gallery := models.NewSection("home", models.SectionGallery, 3)
	gallery.ID = uuid.New()
	sections = append(sections, gallery)

	hidden := make([]models.Section, len(sections))
	copy(hidden, sections)
	hidden[3] = gallery.Clone()
	hidden[3].IsVisible = false

	repo.On("ListSections", ctx, "home").Return(sections, nil).Once()
	repo.On("ListSections", ctx, "home").Return(hidden, nil).Once()
	paintings.On("ListPaintings", ctx, models.PaintingFilter{}).Return([]models.Painting{
		{Category: "Huile"}, {Category: "Pastel"}, {Category: "Huile"},
	}, nil)

	svc := newTestService(repo, paintings, preview)

	page, err := svc.PublicPage(ctx, "home", "fr")
	require.NoError(t, err)
	require.Len(t, page, 4)
	assert.Equal(t, []string{"Marie", "Dupont"}, page[0].TitleLines)
	assert.Equal(t, []string{"Huile", "Pastel"}, page[3].Categories)

	_, err = svc.PublicPage(ctx, "home", "fr")
	require.NoError(t, err)

	// admin write invalidates cached renderings
	repo.On("GetSection", ctx, gallery.ID).Return(gallery, nil).Once()
	repo.On("SetSectionVisibility", ctx, gallery.ID, false).Return(nil).Once()
	_, err = svc.SetVisibility(ctx, gallery.ID, false)
	require.NoError(t, err)

	page, err = svc.PublicPage(ctx, "home", "fr")
	require.NoError(t, err)
	assert.Len(t, page, 3)

	_, err = svc.PublicSection(ctx, "home", models.SectionGallery, "fr")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, []recordedEvent{{page: "home", event: EventSectionSaved}}, preview.events)

	repo.AssertExpectations(t)
	paintings.AssertNumberOfCalls(t, "ListPaintings", 1)
}

func TestSectionService_InvalidateGalleries(t *testing.T) {
	repo := new(MockSectionRepository)
	paintings := new(MockPaintingRepository)

	gallery := models.NewSection("galerie", models.SectionGallery, 0)
	gallery.ID = uuid.New()

	repo.On("ListSections", ctx, "galerie").Return([]models.Section{gallery}, nil).Twice()
	repo.On("ListSections", ctx, "home").Return(homeSections(), nil).Once()
	paintings.On("ListPaintings", ctx, models.PaintingFilter{}).
		Return([]models.Painting{{Category: "Huile"}}, nil).Once()
	paintings.On("ListPaintings", ctx, models.PaintingFilter{}).
		Return([]models.Painting{{Category: "Huile"}, {Category: "Pastel"}}, nil).Once()

	svc := newTestService(repo, paintings, &fakePreview{})

	page, err := svc.PublicPage(ctx, "galerie", "fr")
	require.NoError(t, err)
	assert.Equal(t, []string{"Huile"}, page[0].Categories)

	_, err = svc.PublicPage(ctx, "home", "fr")
	require.NoError(t, err)

	svc.InvalidateGalleries()

	page, err = svc.PublicPage(ctx, "galerie", "fr")
	require.NoError(t, err)
	assert.Equal(t, []string{"Huile", "Pastel"}, page[0].Categories)

	// страница без галереи остаётся в кэше
	_, err = svc.PublicPage(ctx, "home", "fr")
	require.NoError(t, err)

	repo.AssertExpectations(t)
	paintings.AssertExpectations(t)
}

func TestSectionService_SaveSectionReplacesLocal(t *testing.T) {
	repo := new(MockSectionRepository)
	sections := homeSections()
	repo.On("ListSections", ctx, "home").Return(sections, nil).Once()

	svc := newTestService(repo, new(MockPaintingRepository), &fakePreview{})
	_, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)

	edited := sections[0].Clone()
	edited.Title = models.StrPtr("Jeanne|Martin")
	repo.On("UpdateSection", ctx, edited).Return(edited, nil).Once()

	_, err = svc.SaveSection(ctx, edited)
	require.NoError(t, err)

	list, err := svc.AdminSections(ctx, "home")
	require.NoError(t, err)
	first, second := content.SplitTitle(models.Str(list[0].Title))
	assert.Equal(t, "Jeanne", first)
	assert.Equal(t, "Martin", second)

	repo.AssertExpectations(t)
}
