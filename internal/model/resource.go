// internal/model/resource.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ResourceCategory drives which rate and usage fields are meaningful for a
// resource type. The costing policy table is keyed by category, never by
// individual type.
type ResourceCategory string

const (
	CategoryAdditive    ResourceCategory = "ADDITIVE"
	CategorySubtractive ResourceCategory = "SUBTRACTIVE"
	CategoryFinishing   ResourceCategory = "FINISHING"
)

type ResourceType struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShopID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"shop_id"`
	Title     string           `gorm:"type:text;not null" json:"title"`
	Category  ResourceCategory `gorm:"type:text;not null;default:'ADDITIVE'" json:"category"`
	Active    bool             `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	Shop      Shop       `gorm:"foreignKey:ShopID" json:"-"`
	Resources []Resource `gorm:"foreignKey:ResourceTypeID" json:"resources,omitempty"`
}

// Resource is a billable production asset. Rates are minor currency units
// per minute.
type Resource struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShopID               uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id"`
	ResourceTypeID       uuid.UUID `gorm:"type:uuid;not null;index" json:"resource_type_id"`
	Title                string    `gorm:"type:text;not null" json:"title"`
	Description          string    `gorm:"type:text" json:"description"`
	MachineCostPerMinute int64     `gorm:"not null;default:0" json:"machine_cost_per_minute"`
	LaborCostPerMinute   int64     `gorm:"not null;default:0" json:"labor_cost_per_minute"`
	Active               bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	Shop         Shop            `gorm:"foreignKey:ShopID" json:"-"`
	ResourceType ResourceType    `gorm:"foreignKey:ResourceTypeID" json:"-"`
	Images       []ResourceImage `gorm:"foreignKey:ResourceID" json:"images,omitempty"`
}

type ResourceImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResourceID uuid.UUID `gorm:"type:uuid;not null;index" json:"resource_id"`
	FileURL    string    `gorm:"type:text;not null" json:"file_url"`
	FileName   string    `gorm:"type:text" json:"file_name"`
	Active     bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Material is a consumable attached to a resource type. CostPerGram is in
// minor currency units per gram.
type Material struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShopID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	ResourceTypeID uuid.UUID      `gorm:"type:uuid;not null;index" json:"resource_type_id"`
	Title          string         `gorm:"type:text;not null" json:"title"`
	Manufacturer   string         `gorm:"type:text" json:"manufacturer"`
	CostPerGram    int64          `gorm:"not null;default:0" json:"cost_per_gram"`
	Certifications pq.StringArray `gorm:"type:text[]" json:"certifications"`
	ImageURL       string         `gorm:"type:text" json:"image_url"`
	MSDSFileURL    string         `gorm:"type:text" json:"msds_file_url"`
	TDSFileURL     string         `gorm:"type:text" json:"tds_file_url"`
	Active         bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Shop         Shop         `gorm:"foreignKey:ShopID" json:"-"`
	ResourceType ResourceType `gorm:"foreignKey:ResourceTypeID" json:"-"`
}
