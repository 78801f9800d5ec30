package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const exhibitionsTable = "exhibitions"

var exhibitionColumns = []string{
	"id", "title", "location", "start_date", "end_date", "description", "image_url",
	"is_upcoming", "year", "month", "day", "created_at",
}

type ExhibitionRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewExhibitionRepository(db *pgxpool.Pool) *ExhibitionRepo {
	return &ExhibitionRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ExhibitionRepo) ListExhibitions(ctx context.Context) ([]models.Exhibition, error) {
	const op = "repository.exhibition_repository.ListExhibitions"

	query, args, err := r.sb.Select(exhibitionColumns...).
		From(exhibitionsTable).
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	exhibitions := []models.Exhibition{}
	for rows.Next() {
		e, err := scanExhibition(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		exhibitions = append(exhibitions, e)
	}

	return exhibitions, rows.Err()
}

func (r *ExhibitionRepo) GetExhibition(ctx context.Context, id uuid.UUID) (models.Exhibition, error) {
	const op = "repository.exhibition_repository.GetExhibition"

	query, args, err := r.sb.Select(exhibitionColumns...).
		From(exhibitionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	e, err := scanExhibition(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Exhibition{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

func (r *ExhibitionRepo) CreateExhibition(ctx context.Context, e models.Exhibition) (models.Exhibition, error) {
	const op = "repository.exhibition_repository.CreateExhibition"

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	query, args, err := r.sb.Insert(exhibitionsTable).
		Columns(exhibitionColumns...).
		Values(
			e.ID, e.Title, e.Location, e.StartDate, e.EndDate, e.Description, e.ImageURL,
			e.IsUpcoming, e.Year, e.Month, e.Day, time.Now().UTC(),
		).
		Suffix("RETURNING " + joinColumns(exhibitionColumns)).
		ToSql()
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanExhibition(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *ExhibitionRepo) UpdateExhibition(ctx context.Context, e models.Exhibition) (models.Exhibition, error) {
	const op = "repository.exhibition_repository.UpdateExhibition"

	query, args, err := r.sb.Update(exhibitionsTable).
		SetMap(map[string]interface{}{
			"title":       e.Title,
			"location":    e.Location,
			"start_date":  e.StartDate,
			"end_date":    e.EndDate,
			"description": e.Description,
			"image_url":   e.ImageURL,
			"is_upcoming": e.IsUpcoming,
			"year":        e.Year,
			"month":       e.Month,
			"day":         e.Day,
		}).
		Where(sq.Eq{"id": e.ID}).
		Suffix("RETURNING " + joinColumns(exhibitionColumns)).
		ToSql()
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	updated, err := scanExhibition(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Exhibition{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Exhibition{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (r *ExhibitionRepo) DeleteExhibition(ctx context.Context, id uuid.UUID) error {
	const op = "repository.exhibition_repository.DeleteExhibition"

	query, args, err := r.sb.Delete(exhibitionsTable).Where(sq.Eq{"id": id}).ToSql()
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

func scanExhibition(row pgx.Row) (models.Exhibition, error) {
	var e models.Exhibition
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Location,
		&e.StartDate,
		&e.EndDate,
		&e.Description,
		&e.ImageURL,
		&e.IsUpcoming,
		&e.Year,
		&e.Month,
		&e.Day,
		&e.CreatedAt,
	)
	return e, err
}
