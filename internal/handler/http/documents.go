package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/models"
)

const uploadFilesField = "files"

// upload indexes the PDF batch of a multipart form and answers with the new
// session token.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeDetail(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		log.Warn().Err(err).Msg("cannot parse upload form")
		writeDetail(w, http.StatusUnprocessableEntity, missingField("body", uploadFilesField))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[uploadFilesField]
	if len(headers) == 0 {
		writeDetail(w, http.StatusUnprocessableEntity, missingField("body", uploadFilesField))
		return
	}

	files, err := readUploadFiles(headers)
	if err != nil {
		log.Error().Err(err).Msg("cannot read uploaded file")
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp, err := h.services.Index.Index(ctx, files)
	if err != nil {
		log.Error().Err(err).Int("files", len(files)).Msg("upload failed")
		writeDetail(w, statusFromError(err), err.Error())
		return
	}

	log.Info().Str("session_id", resp.SessionID).Int("files", len(files)).Msg("documents indexed")
	writeJSON(w, http.StatusOK, resp)
}

// chat answers a query within an indexed session.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("cannot decode chat request")
		writeDetail(w, http.StatusUnprocessableEntity, []fieldError{{
			Type: "json_invalid",
			Loc:  []string{"body"},
			Msg:  err.Error(),
		}})
		return
	}

	if strings.TrimSpace(req.SessionID) == "" {
		writeDetail(w, http.StatusBadRequest, "session_id is required for chat.")
		return
	}

	resp, err := h.services.Index.Answer(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("session_id", req.SessionID).Msg("chat failed")
		writeDetail(w, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func readUploadFiles(headers []*multipart.FileHeader) ([]models.UploadFile, error) {
	files := make([]models.UploadFile, 0, len(headers))
	for _, fh := range headers {
		content, err := readFormFile(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fh.Filename, err)
		}
		files = append(files, models.UploadFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return files, nil
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
