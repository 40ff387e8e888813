// internal/handler/auth.go
package handler

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/service"
)

type AuthHandler struct {
	userService  *service.UserService
	cacheService *service.CacheService
}

func NewAuthHandler(userService *service.UserService, cacheService *service.CacheService) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		cacheService: cacheService,
	}
}

type SignupResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// SignupHandler registers a new user. GET issues a signup nonce; POST
// consumes it and creates the account.
func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		nonce, err := h.issueNonce(r)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to generate nonce")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"nonce": nonce})
		return
	}

	nonce := r.URL.Query().Get("nonce")
	if nonce == "" {
		respondWithError(w, http.StatusBadRequest, "Nonce is required")
		return
	}
	exists, err := h.cacheService.CheckNonce(r.Context(), nonce)
	if err != nil || !exists {
		respondWithError(w, http.StatusBadRequest, "Invalid or expired nonce")
		return
	}

	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Signup(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			respondWithError(w, http.StatusConflict, "Email already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user,omitempty"`
	Token string      `json:"token,omitempty"`
}

// LoginHandler authenticates a user and returns a bearer token.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Login(r.Context(), input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

// issueNonce generates a single-use signup nonce and parks it in the cache.
func (h *AuthHandler) issueNonce(r *http.Request) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating random nonce: %w", err)
	}
	nonce := hex.EncodeToString(buf)

	if err := h.cacheService.Set(r.Context(), nonce, true); err != nil {
		return "", err
	}
	return nonce, nil
}
