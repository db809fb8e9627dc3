package payment

import "context"

type ResultType string

const (
	ResultTypeSuccess ResultType = "success"
	ResultTypeFailure ResultType = "failure"
)

// Details is the opaque payment instrument supplied by the investor.
type Details struct {
	PaymentMethod  string
	CardholderName string
	BillingEmail   string
}

type ChargeRequest struct {
	InvestorID  string
	PlanCode    string
	AmountCents int64
	Currency    string
	Details     Details
}

type Result struct {
	Type          ResultType
	TransactionID string
	Error         string
}

func (r Result) Succeeded() bool {
	return r.Type == ResultTypeSuccess
}

type Service interface {
	Charge(ctx context.Context, req ChargeRequest) Result
}
