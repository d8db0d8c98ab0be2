package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a placed checkout. Amounts and the shipping address are
// snapshotted at placement and never track later catalog edits.
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                          // primary key
	OrderNo           string         `gorm:"uniqueIndex;not null" json:"order_no"`                          // public order number
	UserID            uint           `gorm:"index;not null" json:"user_id"`                                 // owner
	Status            string         `gorm:"index;not null" json:"status"`                                  // lifecycle status
	Currency          string         `gorm:"not null" json:"currency"`                                      // currency code
	PaymentMethod     string         `gorm:"type:varchar(20);not null" json:"payment_method"`               // razorpay / cod
	PaymentStatus     string         `gorm:"type:varchar(20);index;not null" json:"payment_status"`         // pending / completed / failed
	RazorpayOrderID   string         `gorm:"type:varchar(64);index" json:"razorpay_order_id,omitempty"`     // gateway order id
	RazorpayPaymentID string         `gorm:"type:varchar(64)" json:"razorpay_payment_id,omitempty"`         // gateway payment id
	Subtotal          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`         // items total
	ShippingFee       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_fee"`     // delivery charge
	Tax               Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`              // GST amount
	Total             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`            // grand total
	ShipName          string         `gorm:"not null" json:"ship_name"`                                     // address snapshot: recipient
	ShipPhone         string         `gorm:"type:varchar(20);not null" json:"ship_phone"`                   // address snapshot: phone
	ShipLine1         string         `gorm:"not null" json:"ship_line1"`                                    // address snapshot: street
	ShipLine2         string         `gorm:"default:''" json:"ship_line2"`                                  // address snapshot: landmark
	ShipCity          string         `gorm:"not null" json:"ship_city"`                                     // address snapshot: city
	ShipState         string         `gorm:"not null" json:"ship_state"`                                    // address snapshot: state
	ShipPincode       string         `gorm:"type:varchar(10);not null" json:"ship_pincode"`                 // address snapshot: pincode
	PaidAt            *time.Time     `gorm:"index" json:"paid_at"`                                          // payment time
	ShippedAt         *time.Time     `json:"shipped_at"`                                                    // dispatch time
	DeliveredAt       *time.Time     `json:"delivered_at"`                                                  // delivery time
	CancelledAt       *time.Time     `gorm:"index" json:"cancelled_at"`                                     // cancellation time
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                       // created time
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`                                       // updated time
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                                // soft delete

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // order lines
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
