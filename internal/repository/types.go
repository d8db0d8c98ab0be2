package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductListFilter narrows catalog queries.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Fabric       string
	Color        string
	Search       string
	InStockOnly  bool
	OnlyActive   bool
	FeaturedOnly bool
	Sort         string
	WithCategory bool
}

// OrderListFilter narrows order queries.
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ReviewListFilter narrows review queries.
type ReviewListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
}
