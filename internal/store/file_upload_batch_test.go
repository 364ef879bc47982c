package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestFileBatchLoader_Load(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "report.PDF", "%PDF-1.7 report")
	notes := writeFile(t, dir, "notes.txt", "plain notes")
	blob := writeFile(t, dir, "data.unknownext", "???")

	files, err := NewFileBatchLoader(logger.Nop()).Load(context.Background(), []string{pdf, notes, blob})

	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "report.PDF", files[0].Name)
	assert.Equal(t, "application/pdf", files[0].ContentType)
	assert.Equal(t, []byte("%PDF-1.7 report"), files[0].Content)

	assert.Equal(t, "notes.txt", files[1].Name)
	assert.Equal(t, "text/plain", files[1].ContentType)

	assert.Equal(t, "data.unknownext", files[2].Name)
	assert.Equal(t, "application/octet-stream", files[2].ContentType)
}

func TestFileBatchLoader_Load_Empty(t *testing.T) {
	files, err := NewFileBatchLoader(logger.Nop()).Load(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileBatchLoader_Load_MissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "a.pdf", "a")
	missing := filepath.Join(dir, "missing.pdf")

	files, err := NewFileBatchLoader(logger.Nop()).Load(context.Background(), []string{ok, missing})

	require.Error(t, err)
	assert.Nil(t, files)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), missing)
}

func TestFileBatchLoader_Load_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileBatchLoader(logger.Nop()).Load(context.Background(), []string{dir})

	assert.ErrorIs(t, err, ErrNotRegularFile)
	assert.Contains(t, err.Error(), dir)
}

func TestFileBatchLoader_Load_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.pdf", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileBatchLoader(logger.Nop()).Load(ctx, []string{p})
	assert.ErrorIs(t, err, context.Canceled)
}
