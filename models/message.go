// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role identifies the author of a chat transcript entry.
type Role string

const (
	// RoleUser marks text typed by the user.
	RoleUser Role = "user"
	// RoleBot marks text produced by the server or by the client on its behalf
	// (placeholders, acknowledgements, error texts).
	RoleBot Role = "bot"
)

// Message is a single display-only transcript entry. Text holds markdown
// source; it is rendered right before display and never persisted.
type Message struct {
	// ID identifies the entry so that a placeholder can be replaced once the
	// matching response arrives.
	ID string

	// Role is the sender of the message.
	Role Role

	// Text is the markdown source of the message.
	Text string

	// Pending is set while the entry is a placeholder awaiting a response.
	Pending bool
}
