// internal/model/ledger.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LedgerItemType string

const (
	LedgerJobCharge LedgerItemType = "JOB_CHARGE"
	LedgerTopUp     LedgerItemType = "TOP_UP"
	LedgerRefund    LedgerItemType = "REFUND"
)

// LedgerItem records a balance movement on a shop. Amount is in minor
// currency units; charges are negative, top-ups positive. Rows are never
// updated after creation.
type LedgerItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShopID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	JobID      *uuid.UUID     `gorm:"type:uuid;index" json:"job_id"`
	Type       LedgerItemType `gorm:"type:text;not null" json:"type"`
	Amount     int64          `gorm:"not null" json:"amount"`
	InvoiceURL string         `gorm:"type:text" json:"invoice_url"`
	CreatedAt  time.Time      `json:"created_at"`

	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
	Job  *Job `gorm:"foreignKey:JobID" json:"-"`
}
