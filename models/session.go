// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultSessionScope is the scope used when the client is started without an
// explicit one. A scope plays the role of a browser tab: each scope holds at
// most one session reference.
const DefaultSessionScope = "default"

// Session is the client-side reference to a server processing session.
//
// A Session exists only after the server accepted an upload batch and issued
// an ID for it. The ID is opaque to the client.
type Session struct {
	// Scope identifies the client instance the session belongs to.
	Scope string

	// ID is the server-issued session token.
	ID string

	// CreatedAt is the moment the client stored the token.
	CreatedAt time.Time
}

// IsActive reports whether the session carries a usable token.
func (s Session) IsActive() bool {
	return s.ID != ""
}
