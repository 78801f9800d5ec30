package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artiste_site/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const settingsTable = "site_settings"

var settingsColumns = []string{
	"site_name", "logo_url", "contact_email", "phone", "instagram", "facebook",
	"footer_text", "footer_text_en", "default_locale", "updated_at",
}

type SettingsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetSettings возвращает пустые настройки, если строка ещё не создана
func (r *SettingsRepo) GetSettings(ctx context.Context) (models.Settings, error) {
	const op = "repository.settings_repository.GetSettings"

	query, args, err := r.sb.Select(settingsColumns...).
		From(settingsTable).
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	s, err := scanSettings(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Settings{DefaultLocale: "fr"}, nil
		}
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (r *SettingsRepo) UpsertSettings(ctx context.Context, s models.Settings) (models.Settings, error) {
	const op = "repository.settings_repository.UpsertSettings"

	query, args, err := r.sb.Insert(settingsTable).
		Columns(append([]string{"id"}, settingsColumns...)...).
		Values(
			1, s.SiteName, s.LogoURL, s.ContactEmail, s.Phone, s.Instagram, s.Facebook,
			s.FooterText, s.FooterTextEn, s.DefaultLocale, time.Now().UTC(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			logo_url = EXCLUDED.logo_url,
			contact_email = EXCLUDED.contact_email,
			phone = EXCLUDED.phone,
			instagram = EXCLUDED.instagram,
			facebook = EXCLUDED.facebook,
			footer_text = EXCLUDED.footer_text,
			footer_text_en = EXCLUDED.footer_text_en,
			default_locale = EXCLUDED.default_locale,
			updated_at = EXCLUDED.updated_at
			RETURNING ` + joinColumns(settingsColumns)).
		ToSql()
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	saved, err := scanSettings(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func scanSettings(row pgx.Row) (models.Settings, error) {
	var s models.Settings
	err := row.Scan(
		&s.SiteName,
		&s.LogoURL,
		&s.ContactEmail,
		&s.Phone,
		&s.Instagram,
		&s.Facebook,
		&s.FooterText,
		&s.FooterTextEn,
		&s.DefaultLocale,
		&s.UpdatedAt,
	)
	return s, err
}
