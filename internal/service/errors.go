package service

import "errors"

// Sentinel errors shared by the service layer. Handlers map these to
// HTTP responses.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password too weak")
	ErrProfileEmpty       = errors.New("no profile fields to update")

	ErrProductNotAvailable = errors.New("product not available")
	ErrOutOfStock          = errors.New("insufficient stock")

	ErrCartEmpty       = errors.New("cart is empty")
	ErrCartItemInvalid = errors.New("invalid cart item")

	ErrAddressInvalid  = errors.New("invalid address")
	ErrAddressRequired = errors.New("shipping address required")

	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderCreateFailed     = errors.New("order create failed")
	ErrOrderFetchFailed      = errors.New("order fetch failed")
	ErrOrderUpdateFailed     = errors.New("order update failed")
	ErrOrderStatusInvalid    = errors.New("order status transition not allowed")
	ErrOrderCancelNotAllowed = errors.New("order can no longer be cancelled")
	ErrPaymentMethodInvalid  = errors.New("unsupported payment method")

	ErrGatewayUnavailable        = errors.New("payment gateway unavailable")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrPaymentAlreadyProcessed   = errors.New("payment already processed")
	ErrPaymentAmountInvalid      = errors.New("payment amount invalid")

	ErrReviewInvalid = errors.New("invalid review")

	ErrEmailServiceDisabled      = errors.New("email sending disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
