// internal/handler/resource.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/openfab/printhub/internal/service"
)

type ResourceHandler struct {
	resourceService *service.ResourceService
	materialService *service.MaterialService
}

func NewResourceHandler(resourceService *service.ResourceService, materialService *service.MaterialService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
		materialService: materialService,
	}
}

// CreateTypeHandler creates a resource type in a shop.
func (h *ResourceHandler) CreateTypeHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.CreateResourceTypeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	rt, err := h.resourceService.CreateType(r.Context(), p, shopID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "resource_type": rt})
}

// UpdateTypeHandler modifies a resource type.
func (h *ResourceHandler) UpdateTypeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	typeID, err := pathUUID(r, "typeID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid resource type id")
		return
	}

	var input service.UpdateResourceTypeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	rt, err := h.resourceService.UpdateType(r.Context(), p, typeID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "resource_type": rt})
}

// ListTypesHandler lists a shop's resource catalog.
func (h *ResourceHandler) ListTypesHandler(w http.ResponseWriter, r *http.Request) {
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

	types, err := h.resourceService.ListTypes(r.Context(), p, shopID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "resource_types": types})
}

// CreateResourceHandler adds a resource under a type.
func (h *ResourceHandler) CreateResourceHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.CreateResourceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resource, err := h.resourceService.CreateResource(r.Context(), p, shopID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "resource": resource})
}

// GetResourceHandler returns a single resource.
func (h *ResourceHandler) GetResourceHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resourceID, err := pathUUID(r, "resourceID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid resource id")
		return
	}

	resource, err := h.resourceService.GetResource(r.Context(), p, resourceID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "resource": resource})
}

// UpdateResourceHandler modifies a resource.
func (h *ResourceHandler) UpdateResourceHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resourceID, err := pathUUID(r, "resourceID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid resource id")
		return
	}

	var input service.UpdateResourceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resource, err := h.resourceService.UpdateResource(r.Context(), p, resourceID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "resource": resource})
}

// CreateMaterialHandler adds a material under a resource type.
func (h *ResourceHandler) CreateMaterialHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.CreateMaterialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	material, err := h.materialService.CreateMaterial(r.Context(), p, shopID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "material": material})
}

// UpdateMaterialHandler modifies a material.
func (h *ResourceHandler) UpdateMaterialHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	materialID, err := pathUUID(r, "materialID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid material id")
		return
	}

	var input service.UpdateMaterialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	material, err := h.materialService.UpdateMaterial(r.Context(), p, materialID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "material": material})
}

// ListMaterialsHandler lists the materials under a resource type.
func (h *ResourceHandler) ListMaterialsHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	typeID, err := pathUUID(r, "typeID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid resource type id")
		return
	}

	materials, err := h.materialService.ListMaterials(r.Context(), p, typeID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "materials": materials})
}
