package services

import "errors"

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrMissingOrderInfo       = errors.New("missing required order information")
	ErrMissingPaymentIntentID = errors.New("payment intent id is required")
	ErrPaymentNotSucceeded    = errors.New("payment not successful")
	ErrMissingOrderData       = errors.New("missing order information in payment intent")
)

// IsCheckoutValidationError reports whether the caller can fix the
// request; anything else is treated as an internal failure.
func IsCheckoutValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrMissingOrderInfo) ||
		errors.Is(err, ErrMissingPaymentIntentID) ||
		errors.Is(err, ErrPaymentNotSucceeded) ||
		errors.Is(err, ErrMissingOrderData)
}
