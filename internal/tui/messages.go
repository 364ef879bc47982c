package tui

import (
	"github.com/MKhiriev/go-doc-chat/models"
)

type filesLoadedMsg struct {
	files []models.UploadFile
	err   error
}

type uploadDoneMsg struct {
	placeholderID string
	result        models.UploadResult
	err           error
}

// chatDoneMsg carries the tags the request was issued under, so a response
// that outlived its placeholder or its session can be told apart.
type chatDoneMsg struct {
	sessionID     string
	queryID       string
	placeholderID string
	query         string
	result        models.ChatResult
	err           error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearNoticeMsg struct {
	seq int
}
