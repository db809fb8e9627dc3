package service

import "errors"

var (
	ErrInvestorNotFound = errors.New("investor not found")
	ErrInvalidPlan      = errors.New("invalid plan type")
	ErrPaymentFailed    = errors.New("payment failed")
	ErrInvalidRequest   = errors.New("invalid request")
)
