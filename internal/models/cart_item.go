package models

import (
	"time"
)

// CartItem is one product line in a user's cart. A user holds at most
// one row per product, quantity carries the count. Lines are hard
// deleted so the unique index never traps a removed row.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                         // primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`    // owner
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"` // product FK
	Quantity  int       `gorm:"not null" json:"quantity"`                                     // count, >= 1
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                      // created time
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                      // updated time

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // product association
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
