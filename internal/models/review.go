package models

import (
	"time"
)

// Review is a user rating for a product, one per user and product.
// Writing again overwrites the previous review, so rows are hard
// deleted and the unique index stays clean.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                           // primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_review_user_product" json:"user_id"`    // author
	ProductID uint      `gorm:"not null;uniqueIndex:idx_review_user_product" json:"product_id"` // product FK
	Rating    int       `gorm:"not null" json:"rating"`                                         // 1..5
	Comment   string    `gorm:"type:text" json:"comment"`                                       // free text, optional
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                        // created time
	UpdatedAt time.Time `json:"updated_at"`                                                     // updated time

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"` // author association
}

// TableName sets the table name.
func (Review) TableName() string {
	return "reviews"
}
