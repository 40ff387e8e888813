// internal/handler/user.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/openfab/printhub/internal/middleware"
	"github.com/openfab/printhub/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UserListResponse struct {
	BaseResponse
	Users []service.UserListing `json:"users"`
	Meta  *service.ListMeta     `json:"meta"`
}

// ListHandler returns the paginated user directory. Global admins only.
func (h *UserHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, meta, err := h.userService.ListUsers(r.Context(), user, offset, limit)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, UserListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Users:        users,
		Meta:         meta,
	})
}

type SuspendInput struct {
	Suspended bool `json:"suspended"`
}

// SuspendHandler sets a user's suspension flag. Global admins only.
func (h *UserHandler) SuspendHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	if actor == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var input SuspendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	updated, err := h.userService.SetSuspended(r.Context(), actor, userID, input.Suspended, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user": updated})
}

// MeHandler returns the authenticated user.
func (h *UserHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user": user})
}
