package public

import (
	"errors"
	"strconv"

	"github.com/vastra-store/internal/http/response"
	"github.com/vastra-store/internal/service"

	"github.com/gin-gonic/gin"
)

// WishlistItemRequest names the product to save.
type WishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist lists the saved products.
func (h *Handler) GetWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.WishlistService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load the wishlist", err)
		return
	}

	response.Success(c, gin.H{"items": items})
}

// AddWishlistItem saves a product. Re-adding is a no-op.
func (h *Handler) AddWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	if err := h.WishlistService.Add(uid, req.ProductID); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotAvailable):
			respondError(c, response.CodeBadRequest, "product is not available", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update the wishlist", err)
		}
		return
	}

	response.Success(c, gin.H{"added": true})
}

// RemoveWishlistItem drops a saved product.
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "product id is invalid", nil)
		return
	}

	if err := h.WishlistService.Remove(uid, uint(productID)); err != nil {
		respondError(c, response.CodeInternal, "failed to update the wishlist", err)
		return
	}

	response.Success(c, gin.H{"removed": true})
}
