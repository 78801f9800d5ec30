package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/storage"
	filestorage "artiste_site/internal/storage/filestorage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const defaultFolder = "misc"

var (
	ErrInvalidFolder = errors.New("invalid upload folder")

	allowedTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
		"image/gif":  ".gif",
	}

	folderPattern = regexp.MustCompile(`^[a-z0-9_-]+(/[a-z0-9_-]+)*$`)
)

type MediaService struct {
	log         *slog.Logger
	fileStorage filestorage.FileStorage
	maxSize     int64
}

func NewMediaService(log *slog.Logger, fileStorage filestorage.FileStorage, maxSize int64) *MediaService {
	return &MediaService{
		log:         log,
		fileStorage: fileStorage,
		maxSize:     maxSize,
	}
}

// Upload сохраняет изображение как <folder>/<uuid><ext> и возвращает его размеры
func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (models.Upload, error) {
	const op = "services.MediaService.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
		slog.String("folder", folder),
	)

	folder, err := cleanFolder(folder)
	if err != nil {
		return models.Upload{}, fmt.Errorf("%s: %w", op, err)
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		log.Warn("file too large", slog.Int64("size", file.Size))
		return models.Upload{}, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	mimeType, width, height, err := probe(file)
	if err != nil {
		log.Warn("rejected upload", sl.Err(err))
		return models.Upload{}, fmt.Errorf("%s: %w", op, err)
	}

	path, size, err := s.fileStorage.Save(ctx, file, folder, uuid.NewString()+allowedTypes[mimeType])
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return models.Upload{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file uploaded", slog.String("path", path), slog.Int64("size", size))

	return models.Upload{
		Path:     filepath.ToSlash(path),
		URL:      s.fileStorage.PublicURL(path),
		MimeType: mimeType,
		Size:     size,
		Width:    width,
		Height:   height,
	}, nil
}

func (s *MediaService) Delete(ctx context.Context, path string) error {
	const op = "services.MediaService.Delete"

	if strings.Contains(path, "..") {
		return fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
	}

	if err := s.fileStorage.Delete(ctx, path); err != nil {
		return fmt.Errorf("%s: %w: %w", op, storage.ErrFileNotFound, err)
	}

	return nil
}

// probe detects the real content type and reads image dimensions from the header.
func probe(file *multipart.FileHeader) (string, int, int, error) {
	src, err := file.Open()
	if err != nil {
		return "", 0, 0, err
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", 0, 0, err
	}

	mimeType := strings.SplitN(mt.String(), ";", 2)[0]
	if _, ok := allowedTypes[mimeType]; !ok {
		return "", 0, 0, fmt.Errorf("%w: %s", storage.ErrInvalidFileType, mimeType)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", 0, 0, err
	}

	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %w", storage.ErrInvalidFileType, err)
	}

	return mimeType, cfg.Width, cfg.Height, nil
}

func cleanFolder(folder string) (string, error) {
	folder = strings.Trim(strings.ToLower(strings.TrimSpace(folder)), "/")
	if folder == "" {
		return defaultFolder, nil
	}
	if !folderPattern.MatchString(folder) {
		return "", ErrInvalidFolder
	}
	return folder, nil
}
