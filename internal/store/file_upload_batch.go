package store

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/models"
)

const fallbackContentType = "application/octet-stream"

type fileBatchLoader struct {
	logger *logger.Logger
}

// NewFileBatchLoader returns a [FileBatchLoader] that reads files from the
// local filesystem. Any extension is accepted; the server decides what it can
// process.
func NewFileBatchLoader(logger *logger.Logger) FileBatchLoader {
	return &fileBatchLoader{logger: logger}
}

func (l *fileBatchLoader) Load(ctx context.Context, paths []string) ([]models.UploadFile, error) {
	files := make([]models.UploadFile, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := l.loadOne(path)
		if err != nil {
			l.logger.Warn().Err(err).Str("func", "fileBatchLoader.Load").Str("path", path).Msg("cannot read upload file")
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func (l *fileBatchLoader) loadOne(path string) (models.UploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.UploadFile{}, err
	}
	if !info.Mode().IsRegular() {
		return models.UploadFile{}, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.UploadFile{}, err
	}

	return models.UploadFile{
		Name:        filepath.Base(path),
		ContentType: contentTypeByName(path),
		Content:     content,
	}, nil
}

func contentTypeByName(path string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		return fallbackContentType
	}
	// drop parameters such as "; charset=utf-8"
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	return contentType
}
