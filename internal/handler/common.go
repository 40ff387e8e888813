// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/middleware"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps a service error to an HTTP status. Unknown
// errors are logged and surfaced as 500 without leaking internals.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var denied *domain.AccessDeniedError
	switch {
	case errors.As(err, &denied):
		respondWithError(w, http.StatusForbidden, denied.Reason)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrAccountSuspended):
		respondWithError(w, http.StatusForbidden, "Account suspended")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrShopNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrJobItemNotFound),
		errors.Is(err, domain.ErrResourceNotFound),
		errors.Is(err, domain.ErrResourceTypeNotFound),
		errors.Is(err, domain.ErrMaterialNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDuplicateMembership),
		errors.Is(err, domain.ErrConcurrentFinalization):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrIncompleteConfiguration),
		errors.Is(err, domain.ErrMissingUsageData):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownUploadScope):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Unhandled service error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// principal extracts the authenticated principal. The auth middleware
// guarantees a user on protected routes.
func principal(r *http.Request) (access.Principal, bool) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		return access.Principal{}, false
	}
	return access.PrincipalFromUser(user), true
}

// pathUUID parses a chi URL parameter as a UUID.
func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, param))
}
