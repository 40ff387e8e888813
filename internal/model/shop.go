// internal/model/shop.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AccountType string

const (
	AccountCustomer   AccountType = "CUSTOMER"
	AccountAdmin      AccountType = "ADMIN"
	AccountOperator   AccountType = "OPERATOR"
	AccountGroupAdmin AccountType = "GROUP_ADMIN"
)

// Privileged reports whether the account type may act on entities it does
// not own within the shop.
func (t AccountType) Privileged() bool {
	return t == AccountAdmin || t == AccountOperator || t == AccountGroupAdmin
}

// Shop is the tenant boundary. Balance is in minor currency units and may
// go negative when a job is finalized against insufficient funds.
type Shop struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	LogoURL     string    `gorm:"type:text" json:"logo_url"`
	Balance     int64     `gorm:"not null;default:0" json:"balance" szlr:"scope:admin,operator"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Users []UserShop `gorm:"foreignKey:ShopID" json:"-"`
}

// UserShop is a user's membership in a shop. The unique index keeps a
// single membership row per (user, shop); deactivation flips Active
// instead of deleting so reactivation preserves history.
type UserShop struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_user_shops_user_shop" json:"user_id"`
	ShopID      uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_user_shops_user_shop" json:"shop_id"`
	AccountType AccountType `gorm:"type:text;not null;default:'CUSTOMER'" json:"account_type"`
	Active      bool        `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}
