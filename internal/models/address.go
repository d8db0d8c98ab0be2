package models

import (
	"time"

	"gorm.io/gorm"
)

// Address is a structured shipping address in a user's address book.
type Address struct {
	ID        uint           `gorm:"primarykey" json:"id"`                    // primary key
	UserID    uint           `gorm:"not null;index" json:"user_id"`           // owner
	Name      string         `gorm:"not null" json:"name"`                    // recipient name
	Phone     string         `gorm:"type:varchar(20);not null" json:"phone"`  // recipient phone
	Line1     string         `gorm:"not null" json:"line1"`                   // street address
	Line2     string         `gorm:"default:''" json:"line2"`                 // apartment / landmark, optional
	City      string         `gorm:"not null" json:"city"`                    // city
	State     string         `gorm:"not null" json:"state"`                   // state
	Pincode   string         `gorm:"type:varchar(10);not null" json:"pincode"` // 6-digit postal code
	IsDefault bool           `gorm:"default:false;index" json:"is_default"`   // at most one per user
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                 // created time
	UpdatedAt time.Time      `json:"updated_at"`                              // updated time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                          // soft delete
}

// TableName sets the table name.
func (Address) TableName() string {
	return "addresses"
}
