package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/repository"
)

type SettingsService struct {
	log  *slog.Logger
	repo repository.SettingsRepository
}

func NewSettingsService(log *slog.Logger, repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo}
}

func (s *SettingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	const op = "services.SettingsService.GetSettings"

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

// Localized возвращает настройки с подставленным текстом футера для локали
func (s *SettingsService) Localized(ctx context.Context, locale string) (models.Settings, error) {
	const op = "services.SettingsService.Localized"

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	if locale == "" {
		locale = settings.DefaultLocale
	}
	if content.NormalizeLocale(locale) == content.LocaleEN && settings.FooterTextEn != "" {
		settings.FooterText = settings.FooterTextEn
	}

	return settings, nil
}

func (s *SettingsService) UpsertSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	const op = "services.SettingsService.UpsertSettings"

	settings.SiteName = strings.TrimSpace(settings.SiteName)
	settings.DefaultLocale = content.NormalizeLocale(settings.DefaultLocale)

	saved, err := s.repo.UpsertSettings(ctx, settings)
	if err != nil {
		s.log.Error("failed to save settings", slog.String("op", op), sl.Err(err))
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("settings saved", slog.String("op", op))

	return saved, nil
}
