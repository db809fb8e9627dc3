package types

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

func validateInvestorID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("investor_id is required")
	}
	if err := validate.Var(id, "uuid"); err != nil {
		return errors.New("investor_id must be a valid uuid")
	}
	return nil
}

func NewListPlansRequestFromContext(_ echo.Context) (*ListPlansRequest, error) {
	return &ListPlansRequest{}, nil
}

func NewSubscribeRequestFromContext(ctx echo.Context) (*SubscribeRequest, error) {
	var body SubscribeRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.InvestorId = strings.TrimSpace(ctx.Param("id"))
	body.PlanType = strings.TrimSpace(body.PlanType)
	if details := body.GetPaymentDetails(); details != nil {
		details.PaymentMethod = strings.TrimSpace(details.PaymentMethod)
		details.CardholderName = strings.TrimSpace(details.CardholderName)
		details.BillingEmail = strings.TrimSpace(details.BillingEmail)
	}
	return &body, nil
}

func (r *SubscribeRequest) Validate() error {
	if err := validateInvestorID(r.GetInvestorId()); err != nil {
		return err
	}
	if strings.TrimSpace(r.GetPlanType()) == "" {
		return errors.New("plan_type is required")
	}

	details := r.GetPaymentDetails()
	if details == nil {
		return errors.New("payment_details is required")
	}
	if strings.TrimSpace(details.GetPaymentMethod()) == "" {
		return errors.New("payment_details.payment_method is required")
	}
	if email := strings.TrimSpace(details.GetBillingEmail()); email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return errors.New("payment_details.billing_email must be a valid email")
		}
	}

	return nil
}

func NewCheckSubscriptionRequestFromContext(ctx echo.Context) (*CheckSubscriptionRequest, error) {
	return &CheckSubscriptionRequest{InvestorId: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *CheckSubscriptionRequest) Validate() error {
	return validateInvestorID(r.GetInvestorId())
}

func NewCancelSubscriptionRequestFromContext(ctx echo.Context) (*CancelSubscriptionRequest, error) {
	return &CancelSubscriptionRequest{InvestorId: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *CancelSubscriptionRequest) Validate() error {
	return validateInvestorID(r.GetInvestorId())
}

func NewListSubscriptionRecordsRequestFromContext(ctx echo.Context) (*ListSubscriptionRecordsRequest, error) {
	return &ListSubscriptionRecordsRequest{InvestorId: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *ListSubscriptionRecordsRequest) Validate() error {
	return validateInvestorID(r.GetInvestorId())
}
