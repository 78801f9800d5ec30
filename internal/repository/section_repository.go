package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/storage"
	"artiste_site/internal/storage/postgresql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const sectionsTable = "page_sections"

var sectionColumns = []string{
	"id",
	"page_name",
	"section_key",
	"section_order",
	"is_visible",
	"title",
	"subtitle",
	"description",
	"button_text",
	"button_link",
	"image_url",
	"image_overlay_opacity",
	"background_color",
	"text_color",
	"accent_color",
	"custom_data",
	"created_at",
	"updated_at",
}

type SectionRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSectionRepository(db *pgxpool.Pool) *SectionRepo {
	return &SectionRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListSections возвращает секции страницы в порядке section_order
func (r *SectionRepo) ListSections(ctx context.Context, pageName string) ([]models.Section, error) {
	const op = "repository.section_repository.ListSections"

	query, args, err := r.sb.Select(sectionColumns...).
		From(sectionsTable).
		Where(sq.Eq{"page_name": pageName}).
		OrderBy("section_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sections = append(sections, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sections, nil
}

func (r *SectionRepo) ListPages(ctx context.Context) ([]string, error) {
	const op = "repository.section_repository.ListPages"

	query, args, err := r.sb.Select("DISTINCT page_name").
		From(sectionsTable).
		OrderBy("page_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	pages := []string{}
	for rows.Next() {
		var page string
		if err := rows.Scan(&page); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

func (r *SectionRepo) GetSection(ctx context.Context, id uuid.UUID) (models.Section, error) {
	const op = "repository.section_repository.GetSection"

	query, args, err := r.sb.Select(sectionColumns...).
		From(sectionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Section{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	s, err := scanSection(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Section{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Section{}, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (r *SectionRepo) CreateSection(ctx context.Context, s models.Section) (models.Section, error) {
	const op = "repository.section_repository.CreateSection"

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CustomData == nil {
		s.CustomData = models.Metadata{}
	}
	now := time.Now().UTC()

	query, args, err := r.sb.Insert(sectionsTable).
		Columns(sectionColumns...).
		Values(
			s.ID,
			s.PageName,
			string(s.SectionKey),
			s.SectionOrder,
			s.IsVisible,
			s.Title,
			s.Subtitle,
			s.Description,
			s.ButtonText,
			s.ButtonLink,
			s.ImageURL,
			s.ImageOverlayOpacity,
			s.BackgroundColor,
			s.TextColor,
			s.AccentColor,
			s.CustomData,
			now,
			now,
		).
		Suffix("RETURNING " + joinColumns(sectionColumns)).
		ToSql()
	if err != nil {
		return models.Section{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanSection(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Section{}, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}

	return created, nil
}

// UpdateSection перезаписывает все редактируемые поля секции по id
func (r *SectionRepo) UpdateSection(ctx context.Context, s models.Section) (models.Section, error) {
	const op = "repository.section_repository.UpdateSection"

	if s.CustomData == nil {
		s.CustomData = models.Metadata{}
	}

	query, args, err := r.sb.Update(sectionsTable).
		SetMap(map[string]interface{}{
			"page_name":             s.PageName,
			"section_key":           string(s.SectionKey),
			"section_order":         s.SectionOrder,
			"is_visible":            s.IsVisible,
			"title":                 s.Title,
			"subtitle":              s.Subtitle,
			"description":           s.Description,
			"button_text":           s.ButtonText,
			"button_link":           s.ButtonLink,
			"image_url":             s.ImageURL,
			"image_overlay_opacity": s.ImageOverlayOpacity,
			"background_color":      s.BackgroundColor,
			"text_color":            s.TextColor,
			"accent_color":          s.AccentColor,
			"custom_data":           s.CustomData,
			"updated_at":            time.Now().UTC(),
		}).
		Where(sq.Eq{"id": s.ID}).
		Suffix("RETURNING " + joinColumns(sectionColumns)).
		ToSql()
	if err != nil {
		return models.Section{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	updated, err := scanSection(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Section{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Section{}, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}

	return updated, nil
}

func (r *SectionRepo) SetSectionVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	const op = "repository.section_repository.SetSectionVisibility"

	query, args, err := r.sb.Update(sectionsTable).
		Set("is_visible", visible).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.execOne(ctx, op, query, args)
}

func (r *SectionRepo) DeleteSection(ctx context.Context, id uuid.UUID) error {
	const op = "repository.section_repository.DeleteSection"

	query, args, err := r.sb.Delete(sectionsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.execOne(ctx, op, query, args)
}

func (r *SectionRepo) SwapSectionOrder(ctx context.Context, first, second models.SectionOrder) error {
	const op = "repository.section_repository.SwapSectionOrder"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	for _, so := range []models.SectionOrder{first, second} {
		query, args, err := r.sb.Update(sectionsTable).
			Set("section_order", so.Order).
			Set("updated_at", now).
			Where(sq.Eq{"id": so.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: failed to build query: %w", op, err)
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s: section %s: %w", op, so.ID, storage.ErrNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}

func (r *SectionRepo) execOne(ctx context.Context, op, query string, args []interface{}) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

func scanSection(row pgx.Row) (models.Section, error) {
	var (
		s   models.Section
		key string
	)

	err := row.Scan(
		&s.ID,
		&s.PageName,
		&key,
		&s.SectionOrder,
		&s.IsVisible,
		&s.Title,
		&s.Subtitle,
		&s.Description,
		&s.ButtonText,
		&s.ButtonLink,
		&s.ImageURL,
		&s.ImageOverlayOpacity,
		&s.BackgroundColor,
		&s.TextColor,
		&s.AccentColor,
		&s.CustomData,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return models.Section{}, err
	}

	s.SectionKey = models.SectionKey(key)
	if s.CustomData == nil {
		s.CustomData = models.Metadata{}
	}

	return s, nil
}
