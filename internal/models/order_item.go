package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is one frozen line of a placed order. UnitPrice is the
// catalog price at purchase time and never changes afterwards.
type OrderItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                    // primary key
	OrderID     uint           `gorm:"index;not null" json:"order_id"`                          // order FK
	ProductID   uint           `gorm:"index;not null" json:"product_id"`                        // product FK
	ProductName string         `gorm:"not null" json:"product_name"`                            // name snapshot
	Image       string         `gorm:"type:varchar(500)" json:"image"`                          // first image snapshot
	UnitPrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // price at purchase
	Quantity    int            `gorm:"not null" json:"quantity"`                                // count
	TotalPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // unit price * quantity
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                 // created time
	UpdatedAt   time.Time      `json:"updated_at"`                                              // updated time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                          // soft delete
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
