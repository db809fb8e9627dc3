package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/catalog"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/entity"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/payment"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/service"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/types"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/config"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const grpcInvestorID = "0b8f3c2a-6d1e-4f5a-9c7b-2e4d6f8a0b1c"

type grpcInvestorRepo struct {
	findByIDFn func(ctx context.Context, id string) (*entity.Investor, error)
	updateFn   func(ctx context.Context, investor *entity.Investor) error
}

func (r *grpcInvestorRepo) FindByID(ctx context.Context, id string) (*entity.Investor, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (r *grpcInvestorRepo) UpdateSubscription(ctx context.Context, investor *entity.Investor) error {
	if r.updateFn != nil {
		return r.updateFn(ctx, investor)
	}
	return nil
}

func (r *grpcInvestorRepo) ClearExpiredSubscription(context.Context, string, time.Time) (bool, error) {
	return true, nil
}

func (r *grpcInvestorRepo) ListExpiredSubscribed(context.Context, time.Time) ([]*entity.Investor, error) {
	return nil, nil
}

type grpcRecordRepo struct {
	createFn func(ctx context.Context, record *entity.SubscriptionRecord) error
	listFn   func(ctx context.Context, investorID string) ([]*entity.SubscriptionRecord, error)
}

func (r *grpcRecordRepo) Create(ctx context.Context, record *entity.SubscriptionRecord) error {
	if r.createFn != nil {
		return r.createFn(ctx, record)
	}
	return nil
}

func (r *grpcRecordRepo) UpdateLatestStatus(context.Context, string, string, time.Time) (bool, error) {
	return true, nil
}

func (r *grpcRecordRepo) ListByInvestor(ctx context.Context, investorID string) ([]*entity.SubscriptionRecord, error) {
	if r.listFn != nil {
		return r.listFn(ctx, investorID)
	}
	return nil, nil
}

type grpcTransactor struct{}

func (grpcTransactor) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type grpcPaymentService struct {
	result payment.Result
}

func (s *grpcPaymentService) Charge(context.Context, payment.ChargeRequest) payment.Result {
	return s.result
}

func newServerForTest(investors *grpcInvestorRepo, records *grpcRecordRepo, paySvc *grpcPaymentService) *Server {
	svc := service.NewSubscriptionService(
		investors,
		records,
		grpcTransactor{},
		paySvc,
		nil,
		catalog.New("USD"),
		nil,
		config.SubscriptionConfig{Location: time.UTC, GateCacheTTL: time.Minute},
	)
	return NewServer(svc)
}

func knownInvestor() *grpcInvestorRepo {
	return &grpcInvestorRepo{
		findByIDFn: func(_ context.Context, id string) (*entity.Investor, error) {
			return &entity.Investor{ID: id}, nil
		},
	}
}

func okPayment() *grpcPaymentService {
	return &grpcPaymentService{result: payment.Result{Type: payment.ResultTypeSuccess, TransactionID: "tx-grpc"}}
}

func grpcSubscribeRequest(plan string) *types.SubscribeRequest {
	return &types.SubscribeRequest{
		InvestorId:     grpcInvestorID,
		PlanType:       plan,
		PaymentDetails: &types.PaymentDetails{PaymentMethod: "pm_card_visa"},
	}
}

func TestSubscribeInvalidArgument(t *testing.T) {
	srv := newServerForTest(knownInvestor(), &grpcRecordRepo{}, okPayment())

	_, err := srv.Subscribe(context.Background(), &types.SubscribeRequest{InvestorId: grpcInvestorID})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestSubscribeUnknownPlan(t *testing.T) {
	srv := newServerForTest(knownInvestor(), &grpcRecordRepo{}, okPayment())

	_, err := srv.Subscribe(context.Background(), grpcSubscribeRequest("DAILY"))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestSubscribeNotFound(t *testing.T) {
	srv := newServerForTest(&grpcInvestorRepo{}, &grpcRecordRepo{}, okPayment())

	_, err := srv.Subscribe(context.Background(), grpcSubscribeRequest("MONTHLY"))
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestSubscribePaymentFailed(t *testing.T) {
	srv := newServerForTest(knownInvestor(), &grpcRecordRepo{}, &grpcPaymentService{
		result: payment.Result{Type: payment.ResultTypeFailure, Error: "card declined"},
	})

	_, err := srv.Subscribe(context.Background(), grpcSubscribeRequest("MONTHLY"))
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestSubscribeSuccess(t *testing.T) {
	srv := newServerForTest(knownInvestor(), &grpcRecordRepo{
		createFn: func(_ context.Context, record *entity.SubscriptionRecord) error {
			record.ID = 5
			return nil
		},
	}, okPayment())

	resp, err := srv.Subscribe(context.Background(), grpcSubscribeRequest("quarterly"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !resp.GetSuccess() || resp.GetSubscription().GetId() != 5 || resp.GetSubscription().GetPlanType() != "QUARTERLY" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !resp.GetInvestorStatus().GetHasSubscription() || resp.GetInvestorStatus().GetDaysRemaining() != 90 {
		t.Fatalf("unexpected investor status: %+v", resp.GetInvestorStatus())
	}
}

func TestCheckSubscriptionInternalError(t *testing.T) {
	srv := newServerForTest(&grpcInvestorRepo{
		findByIDFn: func(context.Context, string) (*entity.Investor, error) {
			return nil, errors.New("db error")
		},
	}, &grpcRecordRepo{}, okPayment())

	_, err := srv.CheckSubscription(context.Background(), &types.CheckSubscriptionRequest{InvestorId: grpcInvestorID})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestCheckSubscriptionUnknownInvestor(t *testing.T) {
	srv := newServerForTest(&grpcInvestorRepo{}, &grpcRecordRepo{}, okPayment())

	resp, err := srv.CheckSubscription(context.Background(), &types.CheckSubscriptionRequest{InvestorId: grpcInvestorID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.GetHasSubscription() || resp.GetExpiryDate() != "" {
		t.Fatalf("unexpected status: %+v", resp)
	}
}

func TestCancelSubscriptionNotFound(t *testing.T) {
	srv := newServerForTest(&grpcInvestorRepo{}, &grpcRecordRepo{}, okPayment())

	_, err := srv.CancelSubscription(context.Background(), &types.CancelSubscriptionRequest{InvestorId: grpcInvestorID})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCancelSubscriptionSuccess(t *testing.T) {
	srv := newServerForTest(knownInvestor(), &grpcRecordRepo{}, okPayment())

	resp, err := srv.CancelSubscription(context.Background(), &types.CancelSubscriptionRequest{InvestorId: grpcInvestorID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !resp.GetSuccess() {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestListPlansAndRecords(t *testing.T) {
	srv := newServerForTest(knownInvestor(), &grpcRecordRepo{
		listFn: func(context.Context, string) ([]*entity.SubscriptionRecord, error) {
			return []*entity.SubscriptionRecord{{ID: 3, InvestorID: grpcInvestorID, Status: "active"}}, nil
		},
	}, okPayment())

	plans, err := srv.ListPlans(context.Background(), &types.ListPlansRequest{})
	if err != nil || len(plans.GetPlans()) != 3 {
		t.Fatalf("unexpected plans: %+v err=%v", plans, err)
	}

	records, err := srv.ListSubscriptionRecords(context.Background(), &types.ListSubscriptionRecordsRequest{InvestorId: grpcInvestorID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records.GetRecords()) != 1 || records.GetRecords()[0].GetId() != 3 {
		t.Fatalf("unexpected records: %+v", records)
	}

	if _, err := srv.ListSubscriptionRecords(context.Background(), &types.ListSubscriptionRecordsRequest{InvestorId: "bad"}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
