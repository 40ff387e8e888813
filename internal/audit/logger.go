// internal/audit/logger.go
package audit

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/model"
)

// Refs identifies the entities a mutation touched. Unset fields are omitted
// from the audit record.
type Refs struct {
	ShopID         *uuid.UUID
	JobID          *uuid.UUID
	JobItemID      *uuid.UUID
	BillingGroupID *uuid.UUID
	ResourceID     *uuid.UUID
	ResourceTypeID *uuid.UUID
	MaterialID     *uuid.UUID
}

// Logger records privileged mutations. Every service method that changes a
// shop-scoped entity logs through this interface; records are immutable.
type Logger interface {
	// LogEvent records a mutation with optional before/after snapshots of
	// the affected entity. from and to may be nil.
	LogEvent(
		ctx context.Context,
		logType model.LogType,
		actorID uuid.UUID,
		refs Refs,
		from, to interface{},
		req *http.Request,
	) error
}

// NoOpLogger is a logger that does nothing. Used in tests and tooling that
// runs outside a request context.
type NoOpLogger struct{}

// LogEvent implements Logger.LogEvent
func (l *NoOpLogger) LogEvent(
	ctx context.Context,
	logType model.LogType,
	actorID uuid.UUID,
	refs Refs,
	from, to interface{},
	req *http.Request,
) error {
	return nil
}
