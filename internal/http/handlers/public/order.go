package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vastra-store/internal/http/response"
	"github.com/vastra-store/internal/repository"
	"github.com/vastra-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest names the address the cart ships to. PaymentMethod
// defaults to cash on delivery.
type CheckoutRequest struct {
	AddressID     uint   `json:"address_id" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

func orderIDParam(c *gin.Context) (uint, bool) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "order id is invalid", nil)
		return 0, false
	}
	return uint(id), true
}

// PreviewCheckout prices the cart against an address without placing
// anything.
func (h *Handler) PreviewCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	totals, err := h.OrderService.PreviewCheckout(uid, req.AddressID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, totals)
}

// CreateOrder places a cash-on-delivery order from the cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if _, err := service.NormalizePaymentMethod(req.PaymentMethod); err != nil {
		respondCheckoutError(c, err)
		return
	}

	order, err := h.OrderService.PlaceCODOrder(uid, req.AddressID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, order)
}

// ListOrders returns the user's orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListOrdersByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}

	totalPage := (total + int64(pageSize) - 1) / int64(pageSize)
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetOrder returns one owned order with its items.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetOrderByUser(id, uid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load the order", err)
		return
	}

	response.Success(c, order)
}

// CancelOrder cancels an owned order and restores its stock.
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.OrderService.CancelOrder(id, uid)
	if err != nil {
		respondOrderLifecycleError(c, err)
		return
	}

	response.Success(c, order)
}
