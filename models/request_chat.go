// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatRequest is the JSON body of POST /chat.
type ChatRequest struct {
	// Query is the user question, already trimmed.
	Query string `json:"query"`

	// SessionID is the token of the session the query is scoped to.
	SessionID string `json:"session_id"`
}

// ChatResult is returned by a successful chat exchange.
type ChatResult struct {
	// SessionID is the session the request was issued under. It may differ
	// from the current session if an upload started while the request was in
	// flight.
	SessionID string

	// Answer is the server answer (markdown).
	Answer string
}
