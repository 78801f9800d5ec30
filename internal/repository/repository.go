package repository

import (
	"time"

	redisapp "artiste_site/internal/storage/redis"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	User       UserRepository
	Token      TokenRepository
	Section    SectionRepository
	Painting   PaintingRepository
	Exhibition ExhibitionRepository
	Order      OrderRepository
	Settings   SettingsRepository
	Cart       CartRepository
}

func New(db *pgxpool.Pool, redis *redisapp.Client, cartTTL time.Duration) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Token:      NewRedisTokenRepo(redis),
		Section:    NewSectionRepository(db),
		Painting:   NewPaintingRepository(db),
		Exhibition: NewExhibitionRepository(db),
		Order:      NewOrderRepository(db),
		Settings:   NewSettingsRepository(db),
		Cart:       NewRedisCartRepo(redis, cartTTL),
	}
}
