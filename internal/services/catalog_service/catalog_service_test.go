package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

type MockGallerySource struct {
	mock.Mock
}

func (m *MockGallerySource) AdminSections(ctx context.Context, page string) ([]models.Section, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockGallerySource) InvalidateGalleries() {
	m.Called()
}

var ctx = context.Background()

func price(v float64) *float64 { return &v }

func TestCatalogService_CreatePainting(t *testing.T) {
	tests := []struct {
		name      string
		painting  models.Painting
		mockSetup func(repo *MockPaintingRepository)
		wantErr   error
	}{
		{
			name:     "trimmed and stored",
			painting: models.Painting{Title: "  Marine  ", Category: " Huile ", Price: price(300)},
			mockSetup: func(repo *MockPaintingRepository) {
				repo.On("CreatePainting", ctx, mock.MatchedBy(func(p models.Painting) bool {
					return p.Title == "Marine" && p.Category == "Huile"
				})).Return(models.Painting{ID: uuid.New(), Title: "Marine"}, nil).Once()
			},
		},
		{
			name:      "empty title",
			painting:  models.Painting{Title: "  "},
			mockSetup: func(repo *MockPaintingRepository) {},
			wantErr:   ErrInvalidPainting,
		},
		{
			name:      "negative price",
			painting:  models.Painting{Title: "Marine", Price: price(-1)},
			mockSetup: func(repo *MockPaintingRepository) {},
			wantErr:   ErrInvalidPainting,
		},
		{
			name:      "original price below price",
			painting:  models.Painting{Title: "Marine", Price: price(300), OriginalPrice: price(200)},
			mockSetup: func(repo *MockPaintingRepository) {},
			wantErr:   ErrInvalidPainting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPaintingRepository)
			tt.mockSetup(repo)
			gallery := new(MockGallerySource)
			gallery.On("InvalidateGalleries").Maybe()
			svc := NewCatalogService(slog.Default(), repo, gallery, "galerie")

			_, err := svc.CreatePainting(ctx, tt.painting)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				gallery.AssertNotCalled(t, "InvalidateGalleries")
			} else {
				assert.NoError(t, err)
				gallery.AssertNumberOfCalls(t, "InvalidateGalleries", 1)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_GalleryCategories(t *testing.T) {
	configured := models.NewSection("galerie", models.SectionGallery, 0)
	configured.CustomData = models.GalleryData{Categories: []string{"Portraits", "Paysages"}, AllLabel: "Toutes"}.
		Apply(configured.CustomData)

	empty := models.NewSection("galerie", models.SectionGallery, 0)

	tests := []struct {
		name      string
		mockSetup func(repo *MockPaintingRepository, gallery *MockGallerySource)
		want      models.GalleryData
		wantErr   bool
	}{
		{
			name: "configured categories win",
			mockSetup: func(repo *MockPaintingRepository, gallery *MockGallerySource) {
				gallery.On("AdminSections", ctx, "galerie").Return([]models.Section{configured}, nil)
			},
			want: models.GalleryData{Categories: []string{"Portraits", "Paysages"}, AllLabel: "Toutes"},
		},
		{
			name: "fallback to painting categories",
			mockSetup: func(repo *MockPaintingRepository, gallery *MockGallerySource) {
				gallery.On("AdminSections", ctx, "galerie").Return([]models.Section{empty}, nil)
				repo.On("Categories", ctx).Return([]string{"Huile", "Pastel"}, nil)
			},
			want: models.GalleryData{Categories: []string{"Huile", "Pastel"}, AllLabel: "Tout"},
		},
		{
			name: "no gallery section",
			mockSetup: func(repo *MockPaintingRepository, gallery *MockGallerySource) {
				gallery.On("AdminSections", ctx, "galerie").Return([]models.Section{}, storage.ErrRelationMissing)
				repo.On("Categories", ctx).Return([]string{}, nil)
			},
			want: models.GalleryData{Categories: []string{}, AllLabel: "Tout"},
		},
		{
			name: "repository error",
			mockSetup: func(repo *MockPaintingRepository, gallery *MockGallerySource) {
				gallery.On("AdminSections", ctx, "galerie").Return([]models.Section{}, nil)
				repo.On("Categories", ctx).Return([]string(nil), errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPaintingRepository)
			gallery := new(MockGallerySource)
			tt.mockSetup(repo, gallery)

			got, err := NewCatalogService(slog.Default(), repo, gallery, "galerie").GalleryCategories(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_WritesInvalidateGalleries(t *testing.T) {
	id := uuid.New()
	painting := models.Painting{ID: id, Title: "Marine", Category: "Pastel", Price: price(120)}

	repo := new(MockPaintingRepository)
	repo.On("UpdatePainting", ctx, painting).Return(painting, nil).Once()
	repo.On("DeletePainting", ctx, id).Return(nil).Once()
	repo.On("DeletePainting", ctx, id).Return(storage.ErrNotFound).Once()

	gallery := new(MockGallerySource)
	gallery.On("InvalidateGalleries").Twice()

	svc := NewCatalogService(slog.Default(), repo, gallery, "galerie")

	_, err := svc.UpdatePainting(ctx, painting)
	require.NoError(t, err)
	require.NoError(t, svc.DeletePainting(ctx, id))
	assert.ErrorIs(t, svc.DeletePainting(ctx, id), storage.ErrNotFound)

	repo.AssertExpectations(t)
	gallery.AssertExpectations(t)
}
