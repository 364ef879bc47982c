package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-doc-chat/internal/app"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/render"
	"github.com/MKhiriev/go-doc-chat/internal/service"
	"github.com/MKhiriev/go-doc-chat/internal/utils"
	"github.com/MKhiriev/go-doc-chat/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusFiles focusArea = iota
	focusChat
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusSuccess
	statusError
)

type idGenerator interface {
	Generate() string
}

const (
	// rows taken by everything except the transcript body
	chromeHeight        = 16
	minTranscriptHeight = 3
	minContentWidth     = 20
)

// Model is the single screen of the client: upload field, status line,
// transcript and chat input. All state changes happen in Update; network
// calls run as commands and report back through messages.
type Model struct {
	ctx       context.Context
	services  *service.ClientServices
	renderer  render.Renderer
	ids       idGenerator
	buildInfo models.AppBuildInfo
	wordWrap  int
	logger    *logger.Logger

	filesInput textinput.Model
	chatInput  textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model

	focus      focusArea
	transcript transcript

	status     string
	statusKind statusKind
	notice     string
	noticeSeq  int

	loading     bool
	uploading   bool
	chatEnabled bool
	chatPending bool

	width  int
	height int
}

func newModel(
	ctx context.Context,
	services *service.ClientServices,
	renderer render.Renderer,
	wordWrap int,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) Model {
	fi := textinput.New()
	fi.Prompt = "> "
	fi.Placeholder = app.MsgFilesPlaceholder
	fi.Focus()

	ci := textinput.New()
	ci.Prompt = "> "
	ci.Placeholder = app.MsgUploadFirst

	vp := viewport.New(80, minTranscriptHeight)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   keys.pageUp,
		PageDown: keys.pageDown,
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		services:   services,
		renderer:   renderer,
		ids:        utils.NewUUIDGenerator(),
		buildInfo:  buildInfo,
		wordWrap:   wordWrap,
		logger:     log,
		filesInput: fi,
		chatInput:  ci,
		viewport:   vp,
		spinner:    sp,
		focus:      focusFiles,
	}

	if _, ok := services.Sessions.Get(); ok {
		m.enableChat()
		m.setStatus(statusSuccess, app.MsgSessionRestored)
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case filesLoadedMsg:
		return m.onFilesLoaded(msg)

	case uploadDoneMsg:
		return m.onUploadDone(msg)

	case chatDoneMsg:
		return m.onChatDone(msg)

	case copiedMsg:
		return m.showNotice(app.MsgCopied)

	case copyFailedMsg:
		m.logger.Warn().Err(msg.err).Str("func", "Model.Update").Msg("clipboard write failed")
		return m.showNotice(app.MsgErrorPrefix + msg.err.Error())

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		cmd := m.toggleFocus()
		return m, cmd

	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, keys.copy):
		answer, ok := m.transcript.lastAnswer()
		if !ok {
			return m.showNotice(app.MsgNothingToCopy)
		}
		return m, cmdCopyToClipboard(answer)

	case key.Matches(msg, keys.enter):
		if m.focus == focusFiles {
			return m.submitFiles()
		}
		return m.submitQuery()
	}

	return m.updateInputs(msg)
}

// updateInputs forwards typing and cursor blinks to the focused input, unless
// that input is locked by an outstanding request.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus == focusFiles && !m.uploadLocked():
		m.filesInput, cmd = m.filesInput.Update(msg)
	case m.focus == focusChat && m.chatEditable():
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitFiles() (tea.Model, tea.Cmd) {
	if m.uploadLocked() {
		return m, nil
	}

	paths := strings.Fields(m.filesInput.Value())
	if len(paths) == 0 {
		m.setStatus(statusError, app.MsgSelectFiles)
		return m, nil
	}

	wasBusy := m.busy()
	m.loading = true
	return m, tea.Batch(m.cmdLoadFiles(paths), m.spin(wasBusy))
}

func (m Model) onFilesLoaded(msg filesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loading = false
		if errors.Is(msg.err, service.ErrNoFilesSelected) {
			m.setStatus(statusError, app.MsgSelectFiles)
		} else {
			m.setStatus(statusError, app.MsgErrorPrefix+describeError(msg.err))
		}
		return m, nil
	}

	return m.startUpload(msg.files)
}

// startUpload switches the screen into the uploading state. The spinner loop
// started for loading keeps running, so no new tick is scheduled.
func (m Model) startUpload(files []models.UploadFile) (tea.Model, tea.Cmd) {
	placeholderID := m.ids.Generate()

	m.loading = false
	m.uploading = true
	m.chatPending = false
	m.disableChat()
	m.setStatus(statusInfo, app.MsgUploading)

	m.transcript.reset()
	m.transcript.append(models.Message{
		ID:      placeholderID,
		Role:    models.RoleBot,
		Text:    app.MsgProcessingDocuments,
		Pending: true,
	})
	m.refreshTranscript()

	return m, m.cmdUpload(files, placeholderID)
}

func (m Model) onUploadDone(msg uploadDoneMsg) (tea.Model, tea.Cmd) {
	m.uploading = false

	if msg.err != nil {
		detail := describeError(msg.err)
		m.setStatus(statusError, app.MsgErrorPrefix+detail)
		m.transcript.resolve(msg.placeholderID, app.MsgErrorProcessingDocuments+detail)
		m.refreshTranscript()
		return m, nil
	}

	m.setStatus(statusSuccess, app.MsgReadyToChat)
	m.transcript.resolve(msg.placeholderID, msg.result.Answer)
	m.refreshTranscript()

	return m, m.enableChat()
}

func (m Model) submitQuery() (tea.Model, tea.Cmd) {
	if !m.chatEditable() {
		return m, nil
	}

	query := strings.TrimSpace(m.chatInput.Value())
	if query == "" {
		return m, nil
	}
	session, ok := m.services.Sessions.Get()
	if !ok {
		return m, nil
	}

	wasBusy := m.busy()
	placeholderID := m.ids.Generate()
	queryID := m.ids.Generate()

	m.transcript.append(models.Message{ID: queryID, Role: models.RoleUser, Text: query})
	m.transcript.append(models.Message{
		ID:      placeholderID,
		Role:    models.RoleBot,
		Text:    app.MsgTyping,
		Pending: true,
	})
	m.chatInput.Reset()
	m.chatInput.Blur()
	m.chatPending = true
	m.refreshTranscript()

	return m, tea.Batch(m.cmdSendMessage(query, session.ID, queryID, placeholderID), m.spin(wasBusy))
}

func (m Model) onChatDone(msg chatDoneMsg) (tea.Model, tea.Cmd) {
	if !m.transcript.has(msg.placeholderID) || !m.isCurrentSession(msg.sessionID) {
		m.logger.Debug().
			Str("func", "Model.onChatDone").
			Str("session_id", msg.sessionID).
			Msg("discarding chat response issued under a previous upload")
		return m, nil
	}

	m.chatPending = false

	var valErr *service.ValidationError
	switch {
	case errors.As(msg.err, &valErr):
		// the query never left the client: take it back into the input
		m.transcript.remove(msg.queryID)
		m.transcript.remove(msg.placeholderID)
		if m.chatInput.Value() == "" {
			m.chatInput.SetValue(msg.query)
		}
	case msg.err != nil:
		m.transcript.resolve(msg.placeholderID, app.MsgErrorPrefix+describeError(msg.err))
	default:
		m.transcript.resolve(msg.placeholderID, msg.result.Answer)
	}
	m.refreshTranscript()

	if !m.chatEnabled {
		return m, nil
	}
	m.focus = focusChat
	m.filesInput.Blur()
	return m, m.chatInput.Focus()
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = text
	return m, cmdClearNotice(m.noticeSeq)
}

func (m *Model) toggleFocus() tea.Cmd {
	switch {
	case m.focus == focusFiles && m.chatEditable():
		m.focus = focusChat
		m.filesInput.Blur()
		return m.chatInput.Focus()
	case m.focus == focusChat:
		m.focus = focusFiles
		m.chatInput.Blur()
		return m.filesInput.Focus()
	}
	return nil
}

func (m *Model) enableChat() tea.Cmd {
	m.chatEnabled = true
	m.chatInput.Placeholder = app.MsgAskQuestion
	m.focus = focusChat
	m.filesInput.Blur()
	return m.chatInput.Focus()
}

func (m *Model) disableChat() {
	m.chatEnabled = false
	m.chatInput.Reset()
	m.chatInput.Blur()
	m.chatInput.Placeholder = app.MsgUploadFirst
	if m.focus == focusChat {
		m.focus = focusFiles
		m.filesInput.Focus()
	}
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	inner := max(width-appStyle.GetHorizontalFrameSize(), minContentWidth)
	m.filesInput.Width = inner - len(m.filesInput.Prompt) - 1
	m.chatInput.Width = inner - len(m.chatInput.Prompt) - 1

	m.viewport.Width = inner - transcriptStyle.GetHorizontalFrameSize()
	m.viewport.Height = max(height-chromeHeight, minTranscriptHeight)

	wrap := m.viewport.Width
	if m.wordWrap > 0 && m.wordWrap < wrap {
		wrap = m.wordWrap
	}
	if err := m.renderer.SetWidth(wrap); err != nil {
		m.logger.Warn().Err(err).Str("func", "Model.resize").Int("width", wrap).Msg("cannot change render width")
	}

	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(m.transcript.render(m.renderer))
	m.viewport.GotoBottom()
}

func (m Model) spin(wasBusy bool) tea.Cmd {
	if wasBusy {
		return nil
	}
	return m.spinner.Tick
}

func (m Model) isCurrentSession(id string) bool {
	session, ok := m.services.Sessions.Get()
	return ok && session.ID == id
}

func (m Model) busy() bool {
	return m.loading || m.uploading || m.chatPending
}

func (m Model) uploadLocked() bool {
	return m.loading || m.uploading
}

func (m Model) chatEditable() bool {
	return m.chatEnabled && !m.chatPending
}
