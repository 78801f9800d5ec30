package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	storage "artiste_site/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T) *storage.LocalFileStorage {
	t.Helper()

	fs, err := storage.NewLocalFileStorage(t.TempDir(), "http://test.local/uploads/")
	require.NoError(t, err)

	return fs
}

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()
	testFile := createTestFile(t, "test.txt", "test content")

	t.Run("successful save with generated name", func(t *testing.T) {
		filePath, size, err := fs.Save(ctx, testFile, "hero", "abc.txt")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("hero", "abc.txt"), filePath)
		assert.Equal(t, int64(12), size)

		data, err := os.ReadFile(fs.GetFullPath(filePath))
		require.NoError(t, err)
		assert.Equal(t, "test content", string(data))
	})

	t.Run("empty name keeps original", func(t *testing.T) {
		filePath, _, err := fs.Save(ctx, testFile, "", "")
		require.NoError(t, err)
		assert.Equal(t, "test.txt", filePath)
	})

	t.Run("save with context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := fs.Save(ctx, testFile, "subdir", "")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid file header", func(t *testing.T) {
		_, _, err := fs.Save(ctx, &multipart.FileHeader{Filename: "bad.txt"}, "", "")
		assert.Error(t, err)
	})
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		filePath, _, err := fs.Save(ctx, createTestFile(t, "to_delete.txt", "content"), "", "")
		require.NoError(t, err)

		require.NoError(t, fs.Delete(ctx, filePath))

		_, err = os.Stat(fs.GetFullPath(filePath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete non-existent file", func(t *testing.T) {
		assert.Error(t, fs.Delete(ctx, "nonexistent.txt"))
	})
}

func TestLocalFileStorage_PublicURL(t *testing.T) {
	fs := setupFileStorage(t)

	assert.Equal(t, "http://test.local/uploads/hero/a.jpg", fs.PublicURL(filepath.Join("hero", "a.jpg")))
	assert.Equal(t, filepath.Join(fs.BaseDir(), "hero", "a.jpg"), fs.GetFullPath("hero/a.jpg"))
}

func TestNewLocalFileStorage_InvalidDirectory(t *testing.T) {
	_, err := storage.NewLocalFileStorage("/proc/nonexistent/path", "http://test.local")
	assert.Error(t, err)
}

func TestConcurrentSaves(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()
	testFile := createTestFile(t, "concurrent.txt", "data")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := fs.Save(ctx, testFile, "concurrent", "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
