package tui

import (
	"strings"

	"github.com/MKhiriev/go-doc-chat/internal/render"
	"github.com/MKhiriev/go-doc-chat/models"
)

// transcript is the append-only list of chat entries shown to the user.
// Entries are addressed by ID so a placeholder can be swapped for its answer.
type transcript struct {
	messages []models.Message
}

func (t *transcript) reset() {
	t.messages = nil
}

func (t *transcript) append(msg models.Message) {
	t.messages = append(t.messages, msg)
}

// resolve replaces the text of the entry with the given id and marks it as no
// longer pending. It reports false when no such entry exists.
func (t *transcript) resolve(id, text string) bool {
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages[i].Text = text
			t.messages[i].Pending = false
			return true
		}
	}
	return false
}

func (t *transcript) remove(id string) {
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages = append(t.messages[:i], t.messages[i+1:]...)
			return
		}
	}
}

func (t *transcript) has(id string) bool {
	for _, msg := range t.messages {
		if msg.ID == id {
			return true
		}
	}
	return false
}

func (t *transcript) len() int {
	return len(t.messages)
}

// lastAnswer returns the markdown source of the newest settled bot entry.
func (t *transcript) lastAnswer() (string, bool) {
	for i := len(t.messages) - 1; i >= 0; i-- {
		msg := t.messages[i]
		if msg.Role == models.RoleBot && !msg.Pending {
			return msg.Text, true
		}
	}
	return "", false
}

func (t *transcript) render(r render.Renderer) string {
	blocks := make([]string, 0, len(t.messages))
	for _, msg := range t.messages {
		blocks = append(blocks, renderMessage(r, msg))
	}
	return strings.Join(blocks, "\n\n")
}

func renderMessage(r render.Renderer, msg models.Message) string {
	author := botStyle.Render("Assistant")
	if msg.Role == models.RoleUser {
		author = userStyle.Render("You")
	}

	body, err := r.Render(msg.Text)
	if err != nil {
		body = render.Sanitize(msg.Text)
	}
	if msg.Pending {
		body = pendingStyle.Render(body)
	}

	return author + "\n" + body
}
