package controller

import (
	"errors"
	"net/http"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/dto"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/factory"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/mapper"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/service"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/types"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	codeInvalidRequest = "invalid_request"
	codeInvalidPlan    = "invalid_plan"
	codeNotFound       = "not_found"
	codePaymentFailed  = "payment_failed"
	codeInternalError  = "internal_error"
)

type SubscriptionController struct {
	subscriptionService *service.SubscriptionService
	logger              logrus.FieldLogger
}

func NewSubscriptionController(subscriptionService *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		logger:              factory.NewModuleLogger("subscriptions-controller"),
	}
}

func (c *SubscriptionController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.HealthResponse{Status: "ok"})
}

func (c *SubscriptionController) ListPlans(ctx echo.Context) error {
	if _, err := types.NewListPlansRequestFromContext(ctx); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, "invalid request")
	}

	return ctx.JSON(http.StatusOK, &dto.ListPlansResponse{
		Plans: mapper.PlansToDTO(c.subscriptionService.ListPlans()),
	})
}

func (c *SubscriptionController) Subscribe(ctx echo.Context) error {
	req, err := types.NewSubscribeRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}

	result, err := c.subscriptionService.Subscribe(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Subscribe failed")
	}

	return ctx.JSON(http.StatusCreated, &dto.SubscribeResponse{
		Success:        true,
		Message:        "Subscription activated successfully",
		Subscription:   mapper.SubscriptionRecordToDTO(result.Record),
		InvestorStatus: mapper.SubscriptionStatusToDTO(&result.Status),
	})
}

func (c *SubscriptionController) CheckSubscription(ctx echo.Context) error {
	req, err := types.NewCheckSubscriptionRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}

	status, err := c.subscriptionService.CheckSubscription(ctx.Request().Context(), req.GetInvestorId())
	if err != nil {
		return c.writeServiceError(ctx, err, "Check subscription failed")
	}

	response := mapper.SubscriptionStatusToDTO(status)
	return ctx.JSON(http.StatusOK, &response)
}

func (c *SubscriptionController) CancelSubscription(ctx echo.Context) error {
	req, err := types.NewCancelSubscriptionRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}

	if _, err := c.subscriptionService.CancelSubscription(ctx.Request().Context(), req.GetInvestorId()); err != nil {
		return c.writeServiceError(ctx, err, "Cancel subscription failed")
	}

	return ctx.JSON(http.StatusOK, &dto.MessageResponse{
		Success: true,
		Message: "Subscription cancelled successfully",
	})
}

func (c *SubscriptionController) ListSubscriptionRecords(ctx echo.Context) error {
	req, err := types.NewListSubscriptionRecordsRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, err.Error())
	}

	items, err := c.subscriptionService.ListSubscriptionRecords(ctx.Request().Context(), req.GetInvestorId())
	if err != nil {
		return c.writeServiceError(ctx, err, "List subscription records failed")
	}

	return ctx.JSON(http.StatusOK, &dto.ListSubscriptionRecordsResponse{
		Records: mapper.SubscriptionRecordsToDTO(items),
	})
}

func (c *SubscriptionController) writeServiceError(ctx echo.Context, err error, logMessage string) error {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrInvalidPlan):
		return c.writeError(ctx, http.StatusBadRequest, codeInvalidPlan, "plan_type must be one of MONTHLY, QUARTERLY, YEARLY")
	case errors.Is(err, service.ErrInvestorNotFound):
		return c.writeError(ctx, http.StatusNotFound, codeNotFound, "investor not found")
	case errors.Is(err, service.ErrPaymentFailed):
		return c.writeError(ctx, http.StatusPaymentRequired, codePaymentFailed, err.Error())
	default:
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error(logMessage)
		return c.writeError(ctx, http.StatusInternalServerError, codeInternalError, "internal server error")
	}
}

func (c *SubscriptionController) writeError(ctx echo.Context, statusCode int, code, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Success: false, Message: message, Code: code})
}
