package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type paymentIntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// StripeService charges investors with a confirmed Stripe PaymentIntent.
type StripeService struct {
	createIntent paymentIntentCreator
}

func NewStripeService(apiKey string) *StripeService {
	stripe.Key = apiKey
	return &StripeService{createIntent: paymentintent.New}
}

func (s *StripeService) Charge(ctx context.Context, req ChargeRequest) Result {
	if strings.TrimSpace(req.Details.PaymentMethod) == "" {
		return Result{Type: ResultTypeFailure, Error: "payment method is required"}
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		PaymentMethod: stripe.String(req.Details.PaymentMethod),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(fmt.Sprintf("Foreclosure data subscription (%s)", req.PlanCode)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
		Metadata: map[string]string{
			"investor_id": req.InvestorID,
			"plan_type":   req.PlanCode,
		},
	}
	if req.Details.BillingEmail != "" {
		params.ReceiptEmail = stripe.String(req.Details.BillingEmail)
	}
	params.Context = ctx

	intent, err := s.createIntent(params)
	if err != nil {
		return Result{Type: ResultTypeFailure, Error: stripeErrorMessage(err)}
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return Result{
			Type:          ResultTypeFailure,
			TransactionID: intent.ID,
			Error:         fmt.Sprintf("payment intent status %s", intent.Status),
		}
	}

	return Result{Type: ResultTypeSuccess, TransactionID: intent.ID}
}

func stripeErrorMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
