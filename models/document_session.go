package models

import "time"

// DocumentSession is the server-side record of one accepted upload batch, as
// kept by the stub document server.
type DocumentSession struct {
	// ID is the token handed to the client, "session_" followed by 8 hex
	// characters.
	ID string

	// Documents lists the uploaded file names in upload order.
	Documents []string

	// CreatedAt is when the batch was accepted.
	CreatedAt time.Time

	// LastUsedAt is refreshed by every chat query of the session.
	LastUsedAt time.Time
}
