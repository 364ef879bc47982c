// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the doc-chat client.
//
// All Msg* constants are human-readable strings written into the status line,
// the chat transcript or input placeholders. Keeping them in one place keeps
// the wording consistent across the UI and its tests.
package app

const (
	// MsgSelectFiles is shown when an upload is attempted with no files.
	MsgSelectFiles = "Please select at least one PDF file."

	// MsgUploading is shown in the status line while an upload is in flight.
	MsgUploading = "Uploading and processing..."

	// MsgProcessingDocuments is the bot placeholder appended at upload start.
	MsgProcessingDocuments = "Processing your documents. This might take a moment..."

	// MsgReadyToChat is shown once the server accepted the upload batch.
	MsgReadyToChat = "Success! Ready to chat."

	// MsgSessionRestored is shown at startup when a persisted session was
	// loaded for the current scope.
	MsgSessionRestored = "Session restored. Ready to chat."

	// MsgErrorPrefix prefixes any failure shown in the status line or in place
	// of a chat answer.
	MsgErrorPrefix = "Error: "

	// MsgErrorProcessingDocuments prefixes the failure that replaces the
	// upload placeholder.
	MsgErrorProcessingDocuments = "Error processing documents: "

	// MsgUploadFirst is the chat input placeholder while no session is held.
	MsgUploadFirst = "First, upload documents..."

	// MsgAskQuestion is the chat input placeholder once chatting is possible.
	MsgAskQuestion = "Ask a question about your documents..."

	// MsgTyping is the bot placeholder shown while a chat answer is pending.
	MsgTyping = "..."

	// MsgFilesPlaceholder is the upload field placeholder.
	MsgFilesPlaceholder = "/path/to/first.pdf /path/to/second.pdf"

	// MsgCopied is shown after the last answer was put on the clipboard.
	MsgCopied = "Last answer copied to clipboard."

	// MsgNothingToCopy is shown when no answer is available for copying.
	MsgNothingToCopy = "Nothing to copy yet."

	// MsgServerUnavailable heads low-level network errors.
	MsgServerUnavailable = "Network is unavailable or the server cannot be reached"
)
