// internal/service/audit_log.go
package service

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/audit"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
)

// Ensure AuditLogService implements the audit.Logger interface
var _ audit.Logger = (*AuditLogService)(nil)

// AuditLogService persists audit records for privileged mutations.
type AuditLogService struct {
	repo repository.AuditLogRepositoryIface
}

func NewAuditLogService(repo repository.AuditLogRepositoryIface) *AuditLogService {
	return &AuditLogService{repo: repo}
}

// LogEvent records a mutation with before/after snapshots.
func (s *AuditLogService) LogEvent(
	ctx context.Context,
	logType model.LogType,
	actorID uuid.UUID,
	refs audit.Refs,
	from, to interface{},
	req *http.Request,
) error {
	log := &model.AuditLog{
		Type:           logType,
		UserID:         actorID,
		ShopID:         refs.ShopID,
		JobID:          refs.JobID,
		JobItemID:      refs.JobItemID,
		BillingGroupID: refs.BillingGroupID,
		ResourceID:     refs.ResourceID,
		ResourceTypeID: refs.ResourceTypeID,
		MaterialID:     refs.MaterialID,
		From:           model.Snapshot(from),
		To:             model.Snapshot(to),
		CreatedAt:      time.Now().UTC(),
	}

	if req != nil {
		log.RequestID = middleware.GetReqID(ctx)
		log.ClientIP = req.RemoteAddr
		log.UserAgent = req.UserAgent()
	}

	return s.repo.Create(ctx, log)
}

// ShopLogs returns a page of a shop's audit records.
func (s *AuditLogService) ShopLogs(ctx context.Context, shopID uuid.UUID, offset, limit int) ([]*model.AuditLog, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.FindByShop(ctx, shopID, offset, limit)
}
