package tui

import (
	"time"

	"github.com/MKhiriev/go-doc-chat/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 2 * time.Second

// writeClipboard is swapped in tests, where no clipboard is available.
var writeClipboard = clipboard.WriteAll

func (m Model) cmdLoadFiles(paths []string) tea.Cmd {
	ctx := m.ctx
	docs := m.services.Documents

	return func() tea.Msg {
		files, err := docs.LoadFiles(ctx, paths)
		return filesLoadedMsg{files: files, err: err}
	}
}

func (m Model) cmdUpload(files []models.UploadFile, placeholderID string) tea.Cmd {
	ctx := m.ctx
	docs := m.services.Documents

	return func() tea.Msg {
		result, err := docs.Upload(ctx, files)
		return uploadDoneMsg{placeholderID: placeholderID, result: result, err: err}
	}
}

func (m Model) cmdSendMessage(query, sessionID, queryID, placeholderID string) tea.Cmd {
	ctx := m.ctx
	chat := m.services.Chat

	return func() tea.Msg {
		result, err := chat.SendMessage(ctx, query)
		return chatDoneMsg{
			sessionID:     sessionID,
			queryID:       queryID,
			placeholderID: placeholderID,
			query:         query,
			result:        result,
			err:           err,
		}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearNotice(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
