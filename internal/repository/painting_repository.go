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
	"github.com/lib/pq"
)

const paintingsTable = "paintings"

var paintingColumns = []string{
	"id", "title", "image_url", "price", "original_price", "width", "height",
	"category", "available", "description", "created_at",
}

type PaintingRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPaintingRepository(db *pgxpool.Pool) *PaintingRepo {
	return &PaintingRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PaintingRepo) ListPaintings(ctx context.Context, filter models.PaintingFilter) ([]models.Painting, error) {
	const op = "repository.painting_repository.ListPaintings"

	qb := r.sb.Select(paintingColumns...).
		From(paintingsTable).
		OrderBy("created_at DESC")

	if len(filter.Categories) > 0 {
		qb = qb.Where(sq.Eq{"category": filter.Categories})
	}
	if filter.AvailableOnly {
		qb = qb.Where(sq.Eq{"available": true})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}
	defer rows.Close()

	paintings := []models.Painting{}
	for rows.Next() {
		p, err := scanPainting(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		paintings = append(paintings, p)
	}

	return paintings, rows.Err()
}

func (r *PaintingRepo) GetPainting(ctx context.Context, id uuid.UUID) (models.Painting, error) {
	const op = "repository.painting_repository.GetPainting"

	query, args, err := r.sb.Select(paintingColumns...).
		From(paintingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Painting{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	p, err := scanPainting(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Painting{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Painting{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (r *PaintingRepo) CreatePainting(ctx context.Context, p models.Painting) (models.Painting, error) {
	const op = "repository.painting_repository.CreatePainting"

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query, args, err := r.sb.Insert(paintingsTable).
		Columns(paintingColumns...).
		Values(
			p.ID, p.Title, p.ImageURL, p.Price, p.OriginalPrice, p.Width, p.Height,
			p.Category, p.Available, p.Description, time.Now().UTC(),
		).
		Suffix("RETURNING " + joinColumns(paintingColumns)).
		ToSql()
	if err != nil {
		return models.Painting{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanPainting(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Painting{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *PaintingRepo) UpdatePainting(ctx context.Context, p models.Painting) (models.Painting, error) {
	const op = "repository.painting_repository.UpdatePainting"

	query, args, err := r.sb.Update(paintingsTable).
		SetMap(map[string]interface{}{
			"title":          p.Title,
			"image_url":      p.ImageURL,
			"price":          p.Price,
			"original_price": p.OriginalPrice,
			"width":          p.Width,
			"height":         p.Height,
			"category":       p.Category,
			"available":      p.Available,
			"description":    p.Description,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + joinColumns(paintingColumns)).
		ToSql()
	if err != nil {
		return models.Painting{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	updated, err := scanPainting(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Painting{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Painting{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (r *PaintingRepo) DeletePainting(ctx context.Context, id uuid.UUID) error {
	const op = "repository.painting_repository.DeletePainting"

	query, args, err := r.sb.Delete(paintingsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// Categories возвращает различные непустые категории в порядке первого появления в ListPaintings
func (r *PaintingRepo) Categories(ctx context.Context) ([]string, error) {
	const op = "repository.painting_repository.Categories"

	query := `
		SELECT COALESCE(array_agg(category ORDER BY last_created DESC), '{}')
		FROM (
			SELECT category, MAX(created_at) AS last_created
			FROM paintings
			WHERE category <> ''
			GROUP BY category
		) c`

	var categories []string
	if err := r.db.QueryRow(ctx, query).Scan(pq.Array(&categories)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if categories == nil {
		categories = []string{}
	}

	return categories, nil
}

func scanPainting(row pgx.Row) (models.Painting, error) {
	var p models.Painting
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.ImageURL,
		&p.Price,
		&p.OriginalPrice,
		&p.Width,
		&p.Height,
		&p.Category,
		&p.Available,
		&p.Description,
		&p.CreatedAt,
	)
	return p, err
}
