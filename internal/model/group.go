// internal/model/group.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type GroupRole string

const (
	GroupRoleMember GroupRole = "MEMBER"
	GroupRoleAdmin  GroupRole = "ADMIN"
)

// BillingGroup is a named collection of shop users sharing billing for jobs.
type BillingGroup struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShopID               uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id"`
	Title                string    `gorm:"type:text;not null" json:"title"`
	Description          string    `gorm:"type:text" json:"description"`
	MembersCanCreateJobs bool      `gorm:"not null;default:false" json:"members_can_create_jobs"`
	Active               bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	Shop  Shop               `gorm:"foreignKey:ShopID" json:"-"`
	Users []UserBillingGroup `gorm:"foreignKey:BillingGroupID" json:"-"`
	Jobs  []Job              `gorm:"foreignKey:GroupID" json:"-"`
}

type UserBillingGroup struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_billing_groups_user_group" json:"user_id"`
	BillingGroupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_billing_groups_user_group" json:"billing_group_id"`
	Role           GroupRole `gorm:"type:text;not null;default:'MEMBER'" json:"role"`
	Active         bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User         User         `gorm:"foreignKey:UserID" json:"-"`
	BillingGroup BillingGroup `gorm:"foreignKey:BillingGroupID" json:"-"`
}
