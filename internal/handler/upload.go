// internal/handler/upload.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/openfab/printhub/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

type AuthorizeUploadRequest struct {
	Scope    string          `json:"scope"`
	Metadata json.RawMessage `json:"metadata"`
}

// AuthorizeHandler checks whether the principal may upload into the
// requested scope. The file store calls this before accepting bytes.
func (h *UploadHandler) AuthorizeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AuthorizeUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	scope, err := h.uploadService.Authorize(r.Context(), p, req.Scope, req.Metadata)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "scope": scope.Kind()})
}

type CompleteUploadRequest struct {
	Scope    string               `json:"scope"`
	Metadata json.RawMessage      `json:"metadata"`
	File     service.UploadedFile `json:"file"`
}

// CompleteHandler registers a finished upload. The scope is re-authorized
// so a completion callback cannot outlive a revoked permission.
func (h *UploadHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CompleteUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	scope, err := h.uploadService.Authorize(r.Context(), p, req.Scope, req.Metadata)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	if err := h.uploadService.Complete(r.Context(), p, scope, req.File, r); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, BaseResponse{Ok: true})
}
