package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LocalStorage persists uploaded files on the local filesystem under a
// single base directory. Stored names are generated, never taken from the
// client, so uploads from different students cannot collide.
type LocalStorage struct {
	basePath string
	logger   zerolog.Logger
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if it does not exist yet.
func NewLocalStorage(basePath string, logger zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath, logger: logger}, nil
}

// BasePath returns the directory files are stored under.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveFile writes the uploaded file under a generated unique name and
// returns that name. The caller records the name against the owning row.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		ls.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	ls.logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("File saved")
	return storedName, nil
}
