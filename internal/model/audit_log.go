// internal/model/audit_log.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type LogType string

const (
	LogUserLogin     LogType = "USER_LOGIN"
	LogUserSuspended LogType = "USER_SUSPENDED"

	LogShopCreated  LogType = "SHOP_CREATED"
	LogShopModified LogType = "SHOP_MODIFIED"

	LogBillingGroupCreated  LogType = "BILLING_GROUP_CREATED"
	LogBillingGroupModified LogType = "BILLING_GROUP_MODIFIED"
	LogUserAddedToGroup     LogType = "USER_ADDED_TO_BILLING_GROUP"
	LogUserRemovedFromGroup LogType = "USER_REMOVED_FROM_BILLING_GROUP"

	LogJobCreated      LogType = "JOB_CREATED"
	LogJobModified     LogType = "JOB_MODIFIED"
	LogJobFinalized    LogType = "JOB_FINALIZED"
	LogJobItemCreated  LogType = "JOB_ITEM_CREATED"
	LogJobItemModified LogType = "JOB_ITEM_MODIFIED"

	LogResourceTypeCreated  LogType = "RESOURCE_TYPE_CREATED"
	LogResourceTypeModified LogType = "RESOURCE_TYPE_MODIFIED"
	LogResourceCreated      LogType = "RESOURCE_CREATED"
	LogResourceModified     LogType = "RESOURCE_MODIFIED"
	LogMaterialCreated      LogType = "MATERIAL_CREATED"
	LogMaterialModified     LogType = "MATERIAL_MODIFIED"

	LogFileUploaded LogType = "FILE_UPLOADED"
)

// AuditLog is an immutable record of a privileged mutation. From and To hold
// before/after snapshots of the affected entity.
type AuditLog struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Type           LogType    `json:"type" gorm:"type:text;not null;index"`
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	ShopID         *uuid.UUID `json:"shop_id" gorm:"type:uuid;index"`
	JobID          *uuid.UUID `json:"job_id" gorm:"type:uuid;index"`
	JobItemID      *uuid.UUID `json:"job_item_id" gorm:"type:uuid"`
	BillingGroupID *uuid.UUID `json:"billing_group_id" gorm:"type:uuid"`
	ResourceID     *uuid.UUID `json:"resource_id" gorm:"type:uuid"`
	ResourceTypeID *uuid.UUID `json:"resource_type_id" gorm:"type:uuid"`
	MaterialID     *uuid.UUID `json:"material_id" gorm:"type:uuid"`
	From           JSONMap    `json:"from" gorm:"type:jsonb"`
	To             JSONMap    `json:"to" gorm:"type:jsonb"`
	RequestID      string     `json:"request_id"`
	ClientIP       string     `json:"client_ip"`
	UserAgent      string     `json:"user_agent"`
	CreatedAt      time.Time  `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Snapshot marshals an entity into a JSONMap for a before/after snapshot.
// Marshal failures degrade to nil rather than blocking the mutation.
func Snapshot(v interface{}) JSONMap {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m JSONMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
