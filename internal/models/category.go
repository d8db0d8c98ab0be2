package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StringArray stores a JSON string list, used for product images.
type StringArray []string

// Value implements driver.Valuer.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Category is a top level product grouping (sarees, kurtas, lehengas...).
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`              // primary key
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`  // url identifier
	Name        string         `gorm:"not null" json:"name"`              // display name
	Description string         `gorm:"type:text" json:"description"`      // short description
	Image       string         `gorm:"type:varchar(500)" json:"image"`    // banner image path
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"` // sort weight
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`           // created time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                    // soft delete
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
