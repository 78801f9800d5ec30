package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidPainting = errors.New("invalid painting")

// GallerySource возвращает секцию галереи для настроенных категорий
// и сбрасывает публичные страницы, собранные из списка картин
type GallerySource interface {
	AdminSections(ctx context.Context, page string) ([]models.Section, error)
	InvalidateGalleries()
}

type CatalogService struct {
	log         *slog.Logger
	repo        repository.PaintingRepository
	gallery     GallerySource
	galleryPage string
}

func NewCatalogService(log *slog.Logger, repo repository.PaintingRepository, gallery GallerySource, galleryPage string) *CatalogService {
	return &CatalogService{
		log:         log,
		repo:        repo,
		gallery:     gallery,
		galleryPage: galleryPage,
	}
}

func (s *CatalogService) ListPaintings(ctx context.Context, filter models.PaintingFilter) ([]models.Painting, error) {
	const op = "services.CatalogService.ListPaintings"

	paintings, err := s.repo.ListPaintings(ctx, filter)
	if err != nil {
		s.log.Error("failed to list paintings", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return paintings, nil
}

func (s *CatalogService) GetPainting(ctx context.Context, id uuid.UUID) (models.Painting, error) {
	const op = "services.CatalogService.GetPainting"

	painting, err := s.repo.GetPainting(ctx, id)
	if err != nil {
		return models.Painting{}, fmt.Errorf("%s: %w", op, err)
	}

	return painting, nil
}

func (s *CatalogService) CreatePainting(ctx context.Context, p models.Painting) (models.Painting, error) {
	const op = "services.CatalogService.CreatePainting"

	log := s.log.With(slog.String("op", op), slog.String("title", p.Title))

	if err := validatePainting(p); err != nil {
		return models.Painting{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreatePainting(ctx, normalizePainting(p))
	if err != nil {
		log.Error("failed to create painting", sl.Err(err))
		return models.Painting{}, fmt.Errorf("%s: %w", op, err)
	}

	s.gallery.InvalidateGalleries()

	log.Info("painting created", slog.String("id", created.ID.String()))

	return created, nil
}

func (s *CatalogService) UpdatePainting(ctx context.Context, p models.Painting) (models.Painting, error) {
	const op = "services.CatalogService.UpdatePainting"

	if err := validatePainting(p); err != nil {
		return models.Painting{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdatePainting(ctx, normalizePainting(p))
	if err != nil {
		s.log.Error("failed to update painting", slog.String("op", op), sl.Err(err))
		return models.Painting{}, fmt.Errorf("%s: %w", op, err)
	}

	s.gallery.InvalidateGalleries()

	return updated, nil
}

func (s *CatalogService) DeletePainting(ctx context.Context, id uuid.UUID) error {
	const op = "services.CatalogService.DeletePainting"

	if err := s.repo.DeletePainting(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.gallery.InvalidateGalleries()

	return nil
}

// GalleryCategories отдаёт категории из настроек секции галереи,
// если они пусты, то категории существующих картин
func (s *CatalogService) GalleryCategories(ctx context.Context) (models.GalleryData, error) {
	const op = "services.CatalogService.GalleryCategories"

	data := models.GalleryData{AllLabel: models.DefaultGalleryAllLabel}

	sections, err := s.gallery.AdminSections(ctx, s.galleryPage)
	if err != nil {
		s.log.Warn("gallery section unavailable", slog.String("op", op), sl.Err(err))
	} else if sec, ok := content.NewResolver(sections, content.LocaleFR).Section(models.SectionGallery); ok {
		data = models.DecodePayload(models.SectionGallery, sec.CustomData).(models.GalleryData)
	}

	if len(data.Categories) > 0 {
		return data, nil
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return models.GalleryData{}, fmt.Errorf("%s: %w", op, err)
	}
	data.Categories = categories

	return data, nil
}

func validatePainting(p models.Painting) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidPainting)
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidPainting)
	}
	if p.OriginalPrice != nil && p.Price != nil && *p.OriginalPrice < *p.Price {
		return fmt.Errorf("%w: original price below price", ErrInvalidPainting)
	}
	return nil
}

func normalizePainting(p models.Painting) models.Painting {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	return p
}
