package exchange

import "errors"

// Every failure is an ordinary control-flow outcome. The engine never
// retries and never commits partially: a returned error means no state
// changed.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTransferRejected    = errors.New("token transfer rejected")
	ErrOrderNotFound       = errors.New("order not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrAlreadyCanceled     = errors.New("order is already canceled")
	ErrAlreadyFilled       = errors.New("order is already filled")
	ErrOrderCanceled       = errors.New("order has been canceled")
	ErrSelfFill            = errors.New("cannot fill your own order")
	ErrZeroAmount          = errors.New("order amount must be positive")
)
