package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog listing.
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                  // primary key
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`                     // category FK
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`                      // url identifier
	Name          string         `gorm:"not null" json:"name"`                                  // display name
	Description   string         `gorm:"type:text" json:"description"`                          // long description
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`   // selling price
	MRP           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"mrp"`     // compare-at price
	Fabric        string         `gorm:"type:varchar(100);index" json:"fabric"`                 // fabric (cotton, silk...)
	Color         string         `gorm:"type:varchar(100)" json:"color"`                        // primary colour
	Images        StringArray    `gorm:"type:json" json:"images"`                               // image paths
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`              // units on hand, never below 0
	Rating        float64        `gorm:"not null;default:0" json:"rating"`                      // average review rating
	ReviewCount   int            `gorm:"not null;default:0" json:"review_count"`                // number of reviews
	IsFeatured    bool           `gorm:"default:false;index" json:"is_featured"`                // shown on the home page
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                   // listed for sale
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                               // created time
	UpdatedAt     time.Time      `json:"updated_at"`                                            // updated time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                        // soft delete

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // category association
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// InStock reports whether any units remain.
func (p Product) InStock() bool {
	return p.StockQuantity > 0
}
