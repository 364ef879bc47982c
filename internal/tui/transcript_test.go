package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-doc-chat/internal/render"
	"github.com/MKhiriev/go-doc-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_ResolveAndRemove(t *testing.T) {
	var tr transcript
	tr.append(models.Message{ID: "q", Role: models.RoleUser, Text: "question"})
	tr.append(models.Message{ID: "p", Role: models.RoleBot, Text: "...", Pending: true})

	_, ok := tr.lastAnswer()
	assert.False(t, ok, "pending placeholder is not an answer")

	require.True(t, tr.resolve("p", "answer"))
	assert.False(t, tr.resolve("missing", "x"))

	answer, ok := tr.lastAnswer()
	assert.True(t, ok)
	assert.Equal(t, "answer", answer)

	tr.remove("p")
	assert.False(t, tr.has("p"))
	assert.Equal(t, 1, tr.len())

	tr.reset()
	assert.Equal(t, 0, tr.len())
}

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) { return "", errors.New("render failed") }
func (failingRenderer) SetWidth(int) error            { return nil }

func TestTranscript_Render(t *testing.T) {
	var tr transcript
	tr.append(models.Message{ID: "q", Role: models.RoleUser, Text: "hi <b>there</b>"})
	tr.append(models.Message{ID: "a", Role: models.RoleBot, Text: "hello"})

	t.Run("through renderer", func(t *testing.T) {
		out := tr.render(render.NewPlainRenderer())

		assert.Contains(t, out, "You\nhi there")
		assert.Contains(t, out, "Assistant\nhello")
		assert.NotContains(t, out, "<b>")
	})

	t.Run("renderer failure falls back to sanitised text", func(t *testing.T) {
		out := tr.render(failingRenderer{})

		assert.Contains(t, out, "hi there")
		assert.NotContains(t, out, "<b>")
	})
}
