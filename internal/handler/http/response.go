package http

import (
	"encoding/json"
	"net/http"
)

// errorBody is the body of every non-2xx response. Detail is a string, or a
// list of field errors when the request body itself was malformed.
type errorBody struct {
	Detail any `json:"detail"`
}

// fieldError describes one malformed request field.
type fieldError struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
}

func missingField(loc ...string) []fieldError {
	return []fieldError{{Type: "missing", Loc: loc, Msg: "Field required"}}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, errorBody{Detail: detail})
}
