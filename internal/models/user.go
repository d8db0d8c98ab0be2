package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a storefront account.
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`              // primary key
	Email              string         `gorm:"uniqueIndex;not null" json:"email"` // login email
	PasswordHash       string         `gorm:"not null" json:"-"`                 // bcrypt hash, never serialized
	Name               string         `gorm:"default:''" json:"name"`            // display name
	Phone              string         `gorm:"type:varchar(20)" json:"phone"`     // contact phone
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`       // token version for bulk revocation
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                    // tokens issued before this are rejected
	LastLoginAt        *time.Time     `json:"last_login_at"`                     // last successful login
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`           // created time
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`           // updated time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
