package public

import (
	"github.com/vastra-store/internal/http/response"
	"github.com/vastra-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateRazorpayOrderRequest opens a gateway order for the cart.
type CreateRazorpayOrderRequest struct {
	AddressID uint `json:"address_id" binding:"required"`
}

// VerifyRazorpayPaymentRequest is the signed handoff from the checkout
// widget.
type VerifyRazorpayPaymentRequest struct {
	AddressID         uint   `json:"address_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature         string `json:"razorpay_signature" binding:"required"`
}

// CreateRazorpayOrder prices the cart and opens a gateway order.
func (h *Handler) CreateRazorpayOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateRazorpayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	result, err := h.PaymentService.CreateGatewayOrder(c.Request.Context(), uid, req.AddressID)
	if err != nil {
		respondPaymentCreateError(c, err)
		return
	}

	response.Success(c, result)
}

// VerifyRazorpayPayment checks the payment signature and places the
// order on success.
func (h *Handler) VerifyRazorpayPayment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req VerifyRazorpayPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.PaymentService.VerifyAndPlace(c.Request.Context(), service.VerifyPaymentInput{
		UserID:            uid,
		AddressID:         req.AddressID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		Signature:         req.Signature,
	})
	if err != nil {
		respondPaymentVerifyError(c, err)
		return
	}

	response.Success(c, order)
}
