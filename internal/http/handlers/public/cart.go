package public

import (
	"errors"
	"strconv"

	"github.com/vastra-store/internal/http/response"
	"github.com/vastra-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest is the add/update payload for one cart line.
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart returns the priced cart.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	summary, err := h.CartService.GetSummary(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load the cart", err)
		return
	}

	response.Success(c, summary)
}

// AddCartItem adds quantity to a cart line, creating it if needed.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	if err := h.CartService.AddItem(uid, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemInvalid):
			respondError(c, response.CodeBadRequest, "cart item is invalid", nil)
		case errors.Is(err, service.ErrProductNotAvailable):
			respondError(c, response.CodeBadRequest, "product is not available", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update the cart", err)
		}
		return
	}

	response.Success(c, gin.H{"updated": true})
}

// SetCartItemQuantity sets a cart line's quantity. Zero or below
// removes the line.
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	if err := h.CartService.SetQuantity(uid, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemInvalid):
			respondError(c, response.CodeBadRequest, "cart item is invalid", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update the cart", err)
		}
		return
	}

	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem removes one cart line.
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "cart item is invalid", nil)
		return
	}

	if err := h.CartService.RemoveItem(uid, uint(productID)); err != nil {
		respondError(c, response.CodeInternal, "failed to update the cart", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(uid); err != nil {
		respondError(c, response.CodeInternal, "failed to clear the cart", err)
		return
	}

	response.Success(c, gin.H{"cleared": true})
}
