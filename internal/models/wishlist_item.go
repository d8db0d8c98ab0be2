package models

import (
	"time"
)

// WishlistItem marks a product a user saved for later. Hard deleted,
// same reasoning as cart lines.
type WishlistItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                         // primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wish_user_product" json:"user_id"`    // owner
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wish_user_product" json:"product_id"` // product FK
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                      // created time

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // product association
}

// TableName sets the table name.
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
