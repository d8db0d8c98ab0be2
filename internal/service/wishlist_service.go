package service

import (
	"github.com/vastra-store/internal/models"
	"github.com/vastra-store/internal/repository"
)

// WishlistService manages saved products.
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates the wishlist service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// ListByUser returns wishlist entries with products attached.
func (s *WishlistService) ListByUser(userID uint) ([]models.WishlistItem, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	return s.wishlistRepo.ListByUser(userID)
}

// Add saves a product. Adding twice is a no-op.
func (s *WishlistService) Add(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}
	return s.wishlistRepo.Add(userID, productID)
}

// Remove drops a product from the wishlist.
func (s *WishlistService) Remove(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrNotFound
	}
	return s.wishlistRepo.DeleteByUserAndProduct(userID, productID)
}

// Contains reports whether the product is saved.
func (s *WishlistService) Contains(userID, productID uint) (bool, error) {
	if userID == 0 || productID == 0 {
		return false, nil
	}
	return s.wishlistRepo.Exists(userID, productID)
}
