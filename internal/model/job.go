// internal/model/job.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNotStarted        Status = "NOT_STARTED"
	StatusInProgress        Status = "IN_PROGRESS"
	StatusCompleted         Status = "COMPLETED"
	StatusCancelled         Status = "CANCELLED"
	StatusWontDo            Status = "WONT_DO"
	StatusWaiting           Status = "WAITING"
	StatusWaitingForPickup  Status = "WAITING_FOR_PICKUP"
	StatusWaitingForPayment Status = "WAITING_FOR_PAYMENT"
)

// ValidStatus reports whether s is a known status value. Transitions are
// deliberately unconstrained; any status may move to any other by a
// privileged actor.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusCancelled,
		StatusWontDo, StatusWaiting, StatusWaitingForPickup, StatusWaitingForPayment:
		return true
	}
	return false
}

// Job is a unit of submitted work, optionally attached to a billing group.
// Finalized is a one-way flag; flipping it charges the shop balance and is
// guarded by a compare-and-set in the repository.
type Job struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      Status     `gorm:"type:text;not null;default:'NOT_STARTED'" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	Finalized   bool       `gorm:"not null;default:false" json:"finalized"`
	FinalizedAt *time.Time `json:"finalized_at"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ShopID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"shop_id"`
	GroupID     *uuid.UUID `gorm:"type:uuid;index" json:"group_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User  User          `gorm:"foreignKey:UserID" json:"-"`
	Shop  Shop          `gorm:"foreignKey:ShopID" json:"-"`
	Group *BillingGroup `gorm:"foreignKey:GroupID" json:"-"`
	Items []JobItem     `gorm:"foreignKey:JobID" json:"items,omitempty"`
}

// JobItem is one deliverable within a job. Approved is tri-state: nil means
// pending review. Usage metrics are nil until recorded by an operator.
type JobItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID    uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	Title    string    `gorm:"type:text;not null" json:"title"`
	Quantity int       `gorm:"not null;default:1" json:"quantity"`
	Status   Status    `gorm:"type:text;not null;default:'NOT_STARTED'" json:"status"`
	Approved *bool     `json:"approved"`
	Active   bool      `gorm:"not null;default:true" json:"active"`

	FileURL  string `gorm:"type:text" json:"file_url"`
	FileName string `gorm:"type:text" json:"file_name"`
	FileType string `gorm:"type:text" json:"file_type"`

	ResourceTypeID      *uuid.UUID `gorm:"type:uuid" json:"resource_type_id"`
	ResourceID          *uuid.UUID `gorm:"type:uuid" json:"resource_id"`
	MaterialID          *uuid.UUID `gorm:"type:uuid" json:"material_id"`
	SecondaryMaterialID *uuid.UUID `gorm:"type:uuid" json:"secondary_material_id"`

	// Recorded usage
	MachineMinutes         *float64 `json:"machine_minutes"`
	MaterialGrams          *float64 `json:"material_grams"`
	SecondaryMaterialGrams *float64 `json:"secondary_material_grams"`
	LaborMinutes           *float64 `json:"labor_minutes"`

	// Geometry, populated when the item was derived from a 3D model file
	BoundsX    *float64 `json:"bounds_x"`
	BoundsY    *float64 `json:"bounds_y"`
	BoundsZ    *float64 `json:"bounds_z"`
	Watertight *bool    `json:"watertight"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Job               Job       `gorm:"foreignKey:JobID" json:"-"`
	Resource          *Resource `gorm:"foreignKey:ResourceID" json:"-"`
	Material          *Material `gorm:"foreignKey:MaterialID" json:"-"`
	SecondaryMaterial *Material `gorm:"foreignKey:SecondaryMaterialID" json:"-"`
}
