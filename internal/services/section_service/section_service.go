package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/metrics"
	"artiste_site/internal/repository"
	"artiste_site/internal/storage"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	EventSectionCreated = "section.created"
	EventSectionSaved   = "section.saved"
	EventSectionDeleted = "section.deleted"
	EventSectionsMoved  = "sections.reordered"

	duplicateSuffix = "(copie)"
)

type Direction int

const (
	MoveUp Direction = iota
	MoveDown
)

// PreviewPublisher получает изменения секций для живого превью
type PreviewPublisher interface {
	Publish(page, eventType string, data interface{})
}

// SectionService держит список секций каждой страницы в памяти после первой загрузки.
// Изменения сначала пишутся в БД и только после успеха применяются к списку.
type SectionService struct {
	log       *slog.Logger
	repo      repository.SectionRepository
	paintings repository.PaintingRepository
	cache     *cache.Cache
	preview   PreviewPublisher

	mu    sync.RWMutex
	pages map[string][]models.Section
	// страницы, чей кэш зависит от списка картин
	galleryPages map[string]struct{}
}

func NewSectionService(
	log *slog.Logger,
	repo repository.SectionRepository,
	paintings repository.PaintingRepository,
	pageCache *cache.Cache,
	preview PreviewPublisher,
) *SectionService {
	return &SectionService{
		log:       log,
		repo:      repo,
		paintings: paintings,
		cache:     pageCache,
		preview:   preview,
		pages:     make(map[string][]models.Section),

		galleryPages: make(map[string]struct{}),
	}
}

func (s *SectionService) ListPages(ctx context.Context) ([]string, error) {
	const op = "services.SectionService.ListPages"

	pages, err := s.repo.ListPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pages, nil
}

// AdminSections возвращает копию списка секций страницы (включая скрытые)
func (s *SectionService) AdminSections(ctx context.Context, page string) ([]models.Section, error) {
	const op = "services.SectionService.AdminSections"

	s.mu.RLock()
	list, ok := s.pages[page]
	s.mu.RUnlock()
	if ok {
		return cloneList(list), nil
	}

	list, err := s.load(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

// Reload drops the cached list of a page and fetches it again.
func (s *SectionService) Reload(ctx context.Context, page string) ([]models.Section, error) {
	const op = "services.SectionService.Reload"

	list, err := s.load(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (s *SectionService) load(ctx context.Context, page string) ([]models.Section, error) {
	list, err := s.repo.ListSections(ctx, page)
	if err != nil {
		return nil, err
	}
	content.SortSections(list)

	s.mu.Lock()
	s.pages[page] = cloneList(list)
	s.mu.Unlock()

	return list, nil
}

func (s *SectionService) GetSection(ctx context.Context, id uuid.UUID) (models.Section, error) {
	const op = "services.SectionService.GetSection"

	if sec, ok := s.find(id); ok {
		return sec, nil
	}

	sec, err := s.repo.GetSection(ctx, id)
	if err != nil {
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	return sec, nil
}

// CreateSection вставляет секцию с настройками по умолчанию в конец страницы
func (s *SectionService) CreateSection(ctx context.Context, page string, key models.SectionKey) (models.Section, error) {
	const op = "services.SectionService.CreateSection"

	log := s.log.With(
		slog.String("op", op),
		slog.String("page", page),
		slog.String("section_key", string(key)),
	)

	list, err := s.AdminSections(ctx, page)
	if err != nil {
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	order := 0
	for _, sec := range list {
		if sec.SectionOrder >= order {
			order = sec.SectionOrder + 1
		}
	}

	created, err := s.repo.CreateSection(ctx, models.NewSection(page, key, order))
	if err != nil {
		log.Error("failed to create section", sl.Err(err))
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	s.upsertLocal(created)
	s.changed(page, EventSectionCreated, created)

	log.Info("section created", slog.String("id", created.ID.String()))

	return created, nil
}

// SaveSection перезаписывает секцию целиком по id
func (s *SectionService) SaveSection(ctx context.Context, section models.Section) (models.Section, error) {
	const op = "services.SectionService.SaveSection"

	log := s.log.With(
		slog.String("op", op),
		slog.String("id", section.ID.String()),
	)

	saved, err := s.repo.UpdateSection(ctx, section)
	if err != nil {
		log.Error("failed to save section", sl.Err(err))
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	s.upsertLocal(saved)
	s.changed(saved.PageName, EventSectionSaved, saved)

	return saved, nil
}

func (s *SectionService) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) (models.Section, error) {
	const op = "services.SectionService.SetVisibility"

	sec, err := s.GetSection(ctx, id)
	if err != nil {
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SetSectionVisibility(ctx, id, visible); err != nil {
		s.log.Error("failed to toggle visibility", slog.String("op", op), sl.Err(err))
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	sec.IsVisible = visible
	s.upsertLocal(sec)
	s.changed(sec.PageName, EventSectionSaved, sec)

	return sec, nil
}

func (s *SectionService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	const op = "services.SectionService.DeleteSection"

	sec, err := s.GetSection(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteSection(ctx, id); err != nil {
		s.log.Error("failed to delete section", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	list := s.pages[sec.PageName]
	for i := range list {
		if list[i].ID == id {
			s.pages[sec.PageName] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.changed(sec.PageName, EventSectionDeleted, map[string]string{"id": id.String()})

	return nil
}

// DuplicateSection копирует все поля кроме id, добавляет " (copie)" к заголовку и ставит копию следом
func (s *SectionService) DuplicateSection(ctx context.Context, id uuid.UUID) (models.Section, error) {
	const op = "services.SectionService.DuplicateSection"

	src, err := s.GetSection(ctx, id)
	if err != nil {
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	cp := src.Clone()
	cp.ID = uuid.Nil
	cp.Title = models.StrPtr(duplicateTitle(models.Str(src.Title)))
	cp.SectionOrder = src.SectionOrder + 1

	created, err := s.repo.CreateSection(ctx, cp)
	if err != nil {
		s.log.Error("failed to duplicate section", slog.String("op", op), sl.Err(err))
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	s.upsertLocal(created)
	s.changed(created.PageName, EventSectionCreated, created)

	return created, nil
}

func duplicateTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return duplicateSuffix
	}
	return title + " " + duplicateSuffix
}

// MoveSection меняет section_order с соседом; на краю списка ничего не делает
func (s *SectionService) MoveSection(ctx context.Context, id uuid.UUID, dir Direction) ([]models.Section, error) {
	const op = "services.SectionService.MoveSection"

	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	sec, err := s.GetSection(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	list, err := s.AdminSections(ctx, sec.PageName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := indexOf(list, id)
	if idx < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	neighbour := idx - 1
	if dir == MoveDown {
		neighbour = idx + 1
	}
	if neighbour < 0 || neighbour >= len(list) {
		return list, nil
	}

	moved, other := swapOrders(list[idx], list[neighbour], dir)

	if err := s.repo.SwapSectionOrder(ctx, moved, other); err != nil {
		log.Error("failed to swap section order", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	local := s.pages[sec.PageName]
	for i := range local {
		switch local[i].ID {
		case moved.ID:
			local[i].SectionOrder = moved.Order
		case other.ID:
			local[i].SectionOrder = other.Order
		}
	}
	content.SortSections(local)
	result := cloneList(local)
	s.mu.Unlock()

	s.changed(sec.PageName, EventSectionsMoved, result)

	return result, nil
}

// swapOrders exchanges the orders; equal orders are split so the move is visible.
func swapOrders(sec, neighbour models.Section, dir Direction) (models.SectionOrder, models.SectionOrder) {
	moved := models.SectionOrder{ID: sec.ID, Order: neighbour.SectionOrder}
	other := models.SectionOrder{ID: neighbour.ID, Order: sec.SectionOrder}

	if sec.SectionOrder == neighbour.SectionOrder {
		if dir == MoveUp {
			other.Order = neighbour.SectionOrder + 1
		} else {
			moved.Order = neighbour.SectionOrder + 1
		}
	}

	return moved, other
}

// PublicPage renders the visible sections of a page; results are cached per locale.
func (s *SectionService) PublicPage(ctx context.Context, page, locale string) ([]content.RenderedSection, error) {
	const op = "services.SectionService.PublicPage"

	locale = content.NormalizeLocale(locale)
	key := pageCacheKey(page, locale)

	if cached, ok := s.cache.Get(key); ok {
		metrics.PageCacheHits.WithLabelValues("hit").Inc()
		return cached.([]content.RenderedSection), nil
	}
	metrics.PageCacheHits.WithLabelValues("miss").Inc()

	list, err := s.repo.ListSections(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	content.SortSections(list)

	var paintings []models.Painting
	if _, ok := content.NewResolver(list, locale).Section(models.SectionGallery); ok {
		paintings, err = s.paintings.ListPaintings(ctx, models.PaintingFilter{})
		if err != nil {
			s.log.Warn("gallery categories fallback unavailable", slog.String("op", op), sl.Err(err))
		}

		s.mu.Lock()
		s.galleryPages[page] = struct{}{}
		s.mu.Unlock()
	}

	rendered := content.RenderPage(list, locale, paintings)
	s.cache.SetDefault(key, rendered)

	return rendered, nil
}

func (s *SectionService) PublicSection(ctx context.Context, page string, key models.SectionKey, locale string) (content.RenderedSection, error) {
	const op = "services.SectionService.PublicSection"

	rendered, err := s.PublicPage(ctx, page, locale)
	if err != nil {
		return content.RenderedSection{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, r := range rendered {
		if r.Template == key {
			return r, nil
		}
	}

	return content.RenderedSection{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// Invalidate drops every cached rendering of a page.
func (s *SectionService) Invalidate(page string) {
	s.cache.Delete(pageCacheKey(page, content.LocaleFR))
	s.cache.Delete(pageCacheKey(page, content.LocaleEN))
}

// InvalidateGalleries drops cached pages rendered from the painting list.
func (s *SectionService) InvalidateGalleries() {
	s.mu.Lock()
	pages := make([]string, 0, len(s.galleryPages))
	for page := range s.galleryPages {
		pages = append(pages, page)
	}
	s.galleryPages = make(map[string]struct{})
	s.mu.Unlock()

	for _, page := range pages {
		s.Invalidate(page)
	}
}

func (s *SectionService) changed(page, event string, data interface{}) {
	s.Invalidate(page)
	if s.preview != nil {
		s.preview.Publish(page, event, data)
	}
}

func (s *SectionService) find(id uuid.UUID) (models.Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, list := range s.pages {
		if i := indexOf(list, id); i >= 0 {
			return list[i].Clone(), true
		}
	}

	return models.Section{}, false
}

func (s *SectionService) upsertLocal(sec models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for page, list := range s.pages {
		if i := indexOf(list, sec.ID); i >= 0 && page != sec.PageName {
			s.pages[page] = append(list[:i:i], list[i+1:]...)
		}
	}

	list, ok := s.pages[sec.PageName]
	if !ok {
		return
	}

	if i := indexOf(list, sec.ID); i >= 0 {
		list[i] = sec.Clone()
	} else {
		list = append(list, sec.Clone())
	}
	content.SortSections(list)
	s.pages[sec.PageName] = list
}

func indexOf(list []models.Section, id uuid.UUID) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneList(list []models.Section) []models.Section {
	out := make([]models.Section, len(list))
	for i := range list {
		out[i] = list[i].Clone()
	}
	return out
}

func pageCacheKey(page, locale string) string {
	return "page:" + page + ":" + locale
}

// IsNotFound reports whether err means the section does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
