package public

import (
	"errors"

	"github.com/vastra-store/internal/http/response"
	"github.com/vastra-store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service error to an API error response.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var checkoutCommonErrorRules = []mappedHandlerError{
	{target: service.ErrAddressRequired, code: response.CodeBadRequest, msg: "a shipping address is required"},
	{target: service.ErrAddressInvalid, code: response.CodeBadRequest, msg: "shipping address is invalid"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, msg: "cart item is invalid"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, msg: "product is not available"},
	{target: service.ErrOutOfStock, code: response.CodeBadRequest, msg: "item is out of stock"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, msg: "payment method is not supported"},
}

var paymentVerifyExtraErrorRules = []mappedHandlerError{
	{target: service.ErrPaymentVerificationFailed, code: response.CodeBadRequest, msg: "payment verification failed"},
	{target: service.ErrPaymentAlreadyProcessed, code: response.CodeBadRequest, msg: "payment was already processed"},
	{target: service.ErrOrderFetchFailed, code: response.CodeInternal, msg: "failed to look up the payment"},
}

var paymentCreateExtraErrorRules = []mappedHandlerError{
	{target: service.ErrPaymentAmountInvalid, code: response.CodeBadRequest, msg: "payment amount is invalid"},
	{target: service.ErrGatewayUnavailable, code: response.CodeInternal, msg: "payment gateway is unavailable"},
}

var orderLifecycleErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrOrderCancelNotAllowed, code: response.CodeBadRequest, msg: "order can no longer be cancelled"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, msg: "order status change is not allowed"},
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutCommonErrorRules, response.CodeInternal, "failed to place the order")
}

func respondPaymentCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutCommonErrorRules, paymentCreateExtraErrorRules), response.CodeInternal, "failed to start the payment")
}

func respondPaymentVerifyError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutCommonErrorRules, paymentVerifyExtraErrorRules), response.CodeInternal, "failed to verify the payment")
}

func respondOrderLifecycleError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderLifecycleErrorRules, response.CodeInternal, "failed to update the order")
}
