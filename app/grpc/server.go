package grpc

import (
	"context"
	"errors"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/mapper"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/service"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	types.UnimplementedInvestorSubscriptionsServiceServer
	subscriptionService *service.SubscriptionService
}

func NewServer(subscriptionService *service.SubscriptionService) *Server {
	return &Server{subscriptionService: subscriptionService}
}

func (s *Server) ListPlans(_ context.Context, _ *types.ListPlansRequest) (*types.ListPlansResponse, error) {
	return &types.ListPlansResponse{Plans: mapper.PlansToProto(s.subscriptionService.ListPlans())}, nil
}

func (s *Server) Subscribe(ctx context.Context, req *types.SubscribeRequest) (*types.SubscribeResponse, error) {
	if err := req.Validate(); err != nil {
		loggerWithContext(ctx).WithError(err).Debug("Subscribe validation failed")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.subscriptionService.Subscribe(ctx, req)
	if err != nil {
		return nil, toStatusError(ctx, err, "Subscribe failed")
	}

	return &types.SubscribeResponse{
		Success:        true,
		Message:        "Subscription activated successfully",
		Subscription:   mapper.SubscriptionRecordToProto(result.Record),
		InvestorStatus: mapper.SubscriptionStatusToProto(&result.Status),
	}, nil
}

func (s *Server) CheckSubscription(ctx context.Context, req *types.CheckSubscriptionRequest) (*types.SubscriptionStatus, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.subscriptionService.CheckSubscription(ctx, req.GetInvestorId())
	if err != nil {
		return nil, toStatusError(ctx, err, "Check subscription failed")
	}

	return mapper.SubscriptionStatusToProto(result), nil
}

func (s *Server) CancelSubscription(ctx context.Context, req *types.CancelSubscriptionRequest) (*types.CancelSubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if _, err := s.subscriptionService.CancelSubscription(ctx, req.GetInvestorId()); err != nil {
		return nil, toStatusError(ctx, err, "Cancel subscription failed")
	}

	return &types.CancelSubscriptionResponse{Success: true, Message: "Subscription cancelled successfully"}, nil
}

func (s *Server) ListSubscriptionRecords(ctx context.Context, req *types.ListSubscriptionRecordsRequest) (*types.ListSubscriptionRecordsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	items, err := s.subscriptionService.ListSubscriptionRecords(ctx, req.GetInvestorId())
	if err != nil {
		return nil, toStatusError(ctx, err, "List subscription records failed")
	}

	return &types.ListSubscriptionRecordsResponse{Records: mapper.SubscriptionRecordsToProto(items)}, nil
}

func toStatusError(ctx context.Context, err error, logMessage string) error {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrInvalidPlan):
		return status.Error(codes.InvalidArgument, "plan_type must be one of MONTHLY, QUARTERLY, YEARLY")
	case errors.Is(err, service.ErrInvestorNotFound):
		return status.Error(codes.NotFound, "investor not found")
	case errors.Is(err, service.ErrPaymentFailed):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		loggerWithContext(ctx).WithError(err).Error(logMessage)
		return status.Error(codes.Internal, "internal server error")
	}
}
