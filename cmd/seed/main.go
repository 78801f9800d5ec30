package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"artiste_site/internal/app"
	"artiste_site/internal/config"
	"artiste_site/internal/domain/models"
	"artiste_site/internal/repository"
	"artiste_site/internal/storage/postgresql"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// страницы и их секции по умолчанию, в порядке отображения
var pages = []struct {
	name string
	keys []models.SectionKey
}{
	{"home", []models.SectionKey{
		models.SectionHero,
		models.SectionAbout,
		models.SectionFeatured,
		models.SectionTestimonials,
		models.SectionFAQ,
		models.SectionNewsletter,
	}},
	{app.GalleryPage, []models.SectionKey{
		models.SectionGallery,
		models.SectionShop,
	}},
	{"global", []models.SectionKey{
		models.SectionLogo,
		models.SectionInfo,
		models.SectionFooter,
	}},
}

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		color.Red("seed failed: %v", err)
		os.Exit(1)
	}

	color.Green("seed completed")
}

func run(ctx context.Context, cfg *config.Config) error {
	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer storage.Stop()

	if err := storage.Migrate(ctx); err != nil {
		return err
	}

	sections := repository.NewSectionRepository(storage.Pool())

	for _, page := range pages {
		existing, err := sections.ListSections(ctx, page.name)
		if err != nil {
			return fmt.Errorf("list %s: %w", page.name, err)
		}
		if len(existing) > 0 {
			color.Yellow("skip %s: %d sections already present", page.name, len(existing))
			continue
		}

		for i, key := range page.keys {
			if _, err := sections.CreateSection(ctx, models.NewSection(page.name, key, i)); err != nil {
				return fmt.Errorf("create %s/%s: %w", page.name, key, err)
			}
		}
		color.Cyan("%s: %d sections created", page.name, len(page.keys))
	}

	settings := repository.NewSettingsRepository(storage.Pool())

	current, err := settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if current.SiteName == "" {
		current.SiteName = "Atelier"
		if current.DefaultLocale == "" {
			current.DefaultLocale = "fr"
		}
		if _, err := settings.UpsertSettings(ctx, current); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		color.Cyan("settings initialized")
	}

	return nil
}
