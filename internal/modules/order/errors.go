package order

import "errors"

var (
	ErrNotFound         = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrMethodNotAllowed = errors.New("payment method not active")
	ErrNoActiveMethods  = errors.New("no active payment methods")
)
