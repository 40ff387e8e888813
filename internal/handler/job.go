// internal/handler/job.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/service"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateHandler creates a job in a shop.
func (h *JobHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.CreateJobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	job, err := h.jobService.CreateJob(r.Context(), p, shopID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "job": job})
}

// GetHandler returns a job with its active items.
func (h *JobHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := pathUUID(r, "jobID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.jobService.GetJob(r.Context(), p, jobID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "job": job})
}

// ListHandler lists a shop's jobs visible to the principal.
func (h *JobHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
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

	jobs, err := h.jobService.ListJobs(r.Context(), p, shopID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "jobs": jobs})
}

// UpdateHandler modifies a job.
func (h *JobHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := pathUUID(r, "jobID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	var input service.UpdateJobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	job, err := h.jobService.UpdateJob(r.Context(), p, jobID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "job": job})
}

// CreateItemHandler adds an item to a job.
func (h *JobHandler) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := pathUUID(r, "jobID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	var input service.CreateJobItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.jobService.CreateItem(r.Context(), p, jobID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "item": item})
}

// UpdateItemHandler modifies a job item.
func (h *JobHandler) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var input service.UpdateJobItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.jobService.UpdateItem(r.Context(), p, itemID, input, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "item": item})
}

type CostingResponse struct {
	BaseResponse
	Job        interface{}          `json:"job"`
	Aggregate  interface{}          `json:"aggregate"`
	ItemErrors map[uuid.UUID]string `json:"item_errors,omitempty"`
}

// CostingHandler returns the cost/status/approval rollup of a job without
// finalizing it.
func (h *JobHandler) CostingHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := pathUUID(r, "jobID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, agg, err := h.jobService.Aggregate(r.Context(), p, jobID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	resp := CostingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Job:          job,
		Aggregate:    agg,
	}
	if len(agg.ItemErrors) > 0 {
		resp.ItemErrors = make(map[uuid.UUID]string, len(agg.ItemErrors))
		for id, ierr := range agg.ItemErrors {
			resp.ItemErrors[id] = ierr.Error()
		}
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// FinalizeHandler closes a job and charges the shop balance.
func (h *JobHandler) FinalizeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := pathUUID(r, "jobID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	output, err := h.jobService.Finalize(r.Context(), p, jobID, r)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":                   true,
		"job":                  output.Job,
		"aggregate":            output.Aggregate,
		"ledger_item":          output.LedgerItem,
		"insufficient_balance": output.InsufficientBalance,
	})
}
