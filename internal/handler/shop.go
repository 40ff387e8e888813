// internal/handler/shop.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/serializer"
	"github.com/openfab/printhub/internal/service"
)

type ShopHandler struct {
	shopService     *service.ShopService
	auditLogService *service.AuditLogService
	accessService   *service.AccessService
}

func NewShopHandler(shopService *service.ShopService, auditLogService *service.AuditLogService, accessService *service.AccessService) *ShopHandler {
	return &ShopHandler{
		shopService:     shopService,
		auditLogService: auditLogService,
		accessService:   accessService,
	}
}

// CreateHandler creates a shop. Global admins only.
func (h *ShopHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input service.CreateShopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	shop, err := h.shopService.CreateShop(r.Context(), p, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "shop": shop})
}

// GetHandler returns a shop. Balance is visible to privileged members only.
func (h *ShopHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shopID, err := pathUUID(r, "shopID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shop id")
		return
	}

	shop, m, err := h.shopService.GetShop(r.Context(), p, shopID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	viewer := serializer.ViewerFor(p, m)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"shop": serializer.Sanitize(shop, viewer),
	})
}

// ListHandler returns the shops visible to the principal.
func (h *ShopHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shops, err := h.shopService.ListShops(r.Context(), p)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	// Balances are per-shop scoped; the list view never includes them.
	viewer := serializer.ViewerFor(p, access.Memberships{})
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"shops": serializer.Sanitize(shops, viewer),
	})
}

// UpdateHandler modifies a shop. Shop ADMIN or global admin only.
func (h *ShopHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shopID, err := pathUUID(r, "shopID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shop id")
		return
	}

	var input service.UpdateShopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	shop, err := h.shopService.UpdateShop(r.Context(), p, shopID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "shop": shop})
}

// MembersHandler lists the shop roster. Member emails are scoped to
// privileged viewers.
func (h *ShopHandler) MembersHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shopID, err := pathUUID(r, "shopID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shop id")
		return
	}

	members, m, err := h.shopService.Members(r.Context(), p, shopID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	viewer := serializer.ViewerFor(p, m)
	out := make([]interface{}, 0, len(members))
	for _, member := range members {
		entry := serializer.Sanitize(member, viewer).(map[string]any)
		entry["user"] = serializer.Sanitize(&member.User, viewer)
		out = append(out, entry)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "members": out})
}

// AddMemberHandler adds or reactivates a shop membership.
func (h *ShopHandler) AddMemberHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shopID, err := pathUUID(r, "shopID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shop id")
		return
	}

	var input service.AddMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	membership, err := h.shopService.AddMember(r.Context(), p, shopID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "membership": membership})
}

// UpdateMemberHandler changes a member's role or removes the membership.
func (h *ShopHandler) UpdateMemberHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shopID, err := pathUUID(r, "shopID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shop id")
		return
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var input service.UpdateMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	membership, err := h.shopService.UpdateMember(r.Context(), p, shopID, userID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "membership": membership})
}

// TopUpHandler credits the shop balance.
func (h *ShopHandler) TopUpHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shopID, err := pathUUID(r, "shopID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shop id")
		return
	}

	var input service.TopUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.shopService.TopUp(r.Context(), p, shopID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "ledger_item": item})
}

// LedgerHandler lists the shop's ledger. Privileged members only.
func (h *ShopHandler) LedgerHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shopID, err := pathUUID(r, "shopID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shop id")
		return
	}

	items, err := h.shopService.Ledger(r.Context(), p, shopID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "ledger": items})
}

// AuditLogHandler returns a page of the shop's audit records. Shop admins
// and global admins only.
func (h *ShopHandler) AuditLogHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shopID, err := pathUUID(r, "shopID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid shop id")
		return
	}

	if _, err := h.accessService.RequireShopAdmin(r.Context(), p, shopID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, total, err := h.auditLogService.ShopLogs(r.Context(), shopID, offset, limit)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "logs": logs, "total": total})
}
