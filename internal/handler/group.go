// internal/handler/group.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/openfab/printhub/internal/service"
)

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateHandler creates a billing group in a shop.
func (h *GroupHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.CreateGroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	group, err := h.groupService.CreateGroup(r.Context(), p, shopID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "group": group})
}

// ListHandler lists a shop's billing groups visible to the principal.
func (h *GroupHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
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

	groups, err := h.groupService.ListGroups(r.Context(), p, shopID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "groups": groups})
}

// DetailHandler returns a group with members and per-job rollups.
func (h *GroupHandler) DetailHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	detail, err := h.groupService.GetGroupDetail(r.Context(), p, groupID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "detail": detail})
}

// UpdateHandler modifies a billing group.
func (h *GroupHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	var input service.UpdateGroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	group, err := h.groupService.UpdateGroup(r.Context(), p, groupID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "group": group})
}

// AddMemberHandler adds a user to a billing group.
func (h *GroupHandler) AddMemberHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	var input service.AddGroupMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	membership, err := h.groupService.AddMember(r.Context(), p, groupID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "membership": membership})
}

// RemoveMemberHandler deactivates a group membership.
func (h *GroupHandler) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.groupService.RemoveMember(r.Context(), p, groupID, userID, r); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// CanCreateJobsHandler reports whether the principal may create jobs billed
// to the group.
func (h *GroupHandler) CanCreateJobsHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groupID, err := pathUUID(r, "groupID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	canCreate, err := h.groupService.CanCreateJobs(r.Context(), p, groupID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "can_create_jobs": canCreate})
}
