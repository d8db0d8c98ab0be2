package service

import (
	"github.com/vastra-store/internal/config"
	"github.com/vastra-store/internal/logger"
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail is one cart line joined with its product.
type CartItemDetail struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	LineTotal models.Money    `json:"line_total"`
	InStock   bool            `json:"in_stock"`
	Product   *models.Product `json:"product"`
}

// CartSummary is the priced cart.
type CartSummary struct {
	Items  []CartItemDetail `json:"items"`
	Totals CartTotals       `json:"totals"`
}

// CartService manages the per-user shopping cart.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderCfg    config.OrderConfig
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, orderCfg config.OrderConfig) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderCfg:    orderCfg,
	}
}

// GetSummary returns the priced cart. Lines whose product has gone
// inactive are dropped from the cart on read.
func (s *CartService) GetSummary(userID uint) (*CartSummary, error) {
	if userID == 0 {
		return nil, ErrCartItemInvalid
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]CartItemDetail, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || !product.IsActive {
			if err := s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID); err != nil {
				logger.Warnw("cart_prune_dead_line_failed",
					"user_id", userID,
					"product_id", item.ProductID,
					"error", err,
				)
			}
			continue
		}

		lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		subtotal = subtotal.Add(lineTotal).Round(2)
		details = append(details, CartItemDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			LineTotal: models.NewMoneyFromDecimal(lineTotal),
			InStock:   product.InStock(),
			Product:   product,
		})
	}

	return &CartSummary{
		Items:  details,
		Totals: computeTotals(subtotal, s.orderCfg),
	}, nil
}

// AddItem adds quantity to a cart line, creating it on first add.
func (s *CartService) AddItem(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 || quantity <= 0 {
		return ErrCartItemInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}
	return s.cartRepo.AddQuantity(userID, productID, quantity)
}

// SetQuantity replaces a line's quantity. Zero or below removes the line.
func (s *CartService) SetQuantity(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 {
		return ErrCartItemInvalid
	}
	if quantity <= 0 {
		return s.cartRepo.DeleteByUserAndProduct(userID, productID)
	}
	affected, err := s.cartRepo.SetQuantity(userID, productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemInvalid
	}
	return nil
}

// RemoveItem deletes one cart line.
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrCartItemInvalid
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear empties the cart.
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrCartItemInvalid
	}
	return s.cartRepo.ClearByUser(userID)
}
