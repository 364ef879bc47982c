package adapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Detail:     extractDetail(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusUnprocessableEntity:
		respErr.kind = ErrUnprocessableEntity
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	case http.StatusBadGateway:
		respErr.kind = ErrBadGateway
	default:
		respErr.kind = ErrUnexpectedStatus
	}

	return respErr
}

// extractDetail returns the "detail" member of a JSON error body. A string
// detail is returned trimmed; a structured one (validation error lists) is
// returned as compact JSON. Bodies that are not JSON objects yield "".
func extractDetail(body []byte) string {
	var errResp struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	if len(errResp.Detail) == 0 || bytes.Equal(errResp.Detail, []byte("null")) {
		return ""
	}

	var detail string
	if err := json.Unmarshal(errResp.Detail, &detail); err == nil {
		return strings.TrimSpace(detail)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, errResp.Detail); err != nil {
		return ""
	}
	return compact.String()
}
