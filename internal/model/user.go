// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email" szlr:"scope:admin,operator,group_admin"`
	FirstName    string    `gorm:"type:text;not null" json:"first_name"`
	LastName     string    `gorm:"type:text" json:"last_name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Admin        bool      `gorm:"not null;default:false" json:"admin"`
	Suspended    bool      `gorm:"not null;default:false" json:"suspended"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Shops []UserShop `gorm:"foreignKey:UserID" json:"-"`
}

// Name returns the user's display name.
func (u *User) Name() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
