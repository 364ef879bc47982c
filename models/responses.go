package models

// ChatResponse is the success body of both POST /upload and POST /chat.
//
// POST /upload always fills SessionID with the new session token; POST /chat
// echoes the session the query ran against.
type ChatResponse struct {
	// Answer is the markdown text to show to the user.
	Answer string `json:"answer"`

	// SessionID is the session token the response refers to.
	SessionID string `json:"session_id,omitempty"`
}

// ErrorResponse is the body of any non-2xx response.
type ErrorResponse struct {
	// Detail is a human-readable description of the failure.
	Detail string `json:"detail"`
}
