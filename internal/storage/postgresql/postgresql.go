package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"artiste_site/internal/storage"
)

const codeUndefinedTable = "42P01"

type Storage struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, storagePath string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.db
}

func (s *Storage) Stop() {
	s.db.Close()
}

// Migrate создаёт таблицы, если их ещё нет
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgresql.Migrate"

	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MapError converts driver errors to storage sentinels.
func MapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUndefinedTable:
			return fmt.Errorf("%w: %s", storage.ErrRelationMissing, pgErr.Message)
		case "23505":
			return fmt.Errorf("%w: %s", storage.ErrUserExists, pgErr.Message)
		}
	}
	return err
}

const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	phone TEXT,
	password BYTEA NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT false,
	registration_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_login TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS page_sections (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	page_name TEXT NOT NULL,
	section_key TEXT NOT NULL,
	section_order INT NOT NULL DEFAULT 0,
	is_visible BOOLEAN NOT NULL DEFAULT true,
	title TEXT,
	subtitle TEXT,
	description TEXT,
	button_text TEXT,
	button_link TEXT,
	image_url TEXT,
	image_overlay_opacity DOUBLE PRECISION NOT NULL DEFAULT 0.3,
	background_color TEXT,
	text_color TEXT,
	accent_color TEXT,
	custom_data JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS page_sections_page_idx ON page_sections (page_name, section_order);

CREATE TABLE IF NOT EXISTS paintings (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title TEXT NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	price DOUBLE PRECISION,
	original_price DOUBLE PRECISION,
	width DOUBLE PRECISION,
	height DOUBLE PRECISION,
	category TEXT NOT NULL DEFAULT '',
	available BOOLEAN NOT NULL DEFAULT true,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS exhibitions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	start_date DATE NOT NULL,
	end_date DATE,
	description TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	is_upcoming BOOLEAN NOT NULL DEFAULT false,
	year INT NOT NULL,
	month TEXT NOT NULL,
	day INT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS orders (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID,
	customer_name TEXT NOT NULL,
	customer_email TEXT NOT NULL,
	customer_phone TEXT NOT NULL DEFAULT '',
	shipping_address TEXT NOT NULL DEFAULT '',
	items JSONB NOT NULL DEFAULT '[]',
	total_amount DOUBLE PRECISION NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	tracking_number TEXT,
	notes TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS site_settings (
	id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	site_name TEXT NOT NULL DEFAULT '',
	logo_url TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	instagram TEXT NOT NULL DEFAULT '',
	facebook TEXT NOT NULL DEFAULT '',
	footer_text TEXT NOT NULL DEFAULT '',
	footer_text_en TEXT NOT NULL DEFAULT '',
	default_locale TEXT NOT NULL DEFAULT 'fr',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
