package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/cache"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/catalog"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/entity"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/factory"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/payment"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/repository"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/types"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/config"
	"github.com/sirupsen/logrus"
)

const (
	gateSourceCache     = "cache"
	gateSourceDirectory = "directory"

	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type subscribeRequest interface {
	GetInvestorId() string
	GetPlanType() string
	GetPaymentDetails() *types.PaymentDetails
}

type SubscriptionStatus struct {
	HasSubscription bool
	ExpiryDate      *time.Time
	DaysRemaining   int32
	PlanType        string
}

type SubscribeResult struct {
	Record   *entity.SubscriptionRecord
	Investor *entity.Investor
	Plan     entity.Plan
	Status   SubscriptionStatus
}

type CancelResult struct {
	Investor        *entity.Investor
	RecordCancelled bool
}

type SubscriptionService struct {
	investorRepo   investorRepository
	recordRepo     subscriptionRecordRepository
	transactor     transactor
	paymentService payment.Service
	gateCache      gateCache
	plans          *catalog.Catalog
	metrics        metricsRecorder
	cfg            config.SubscriptionConfig
	logger         logrus.FieldLogger
	now            func() time.Time
}

type investorRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Investor, error)
	UpdateSubscription(ctx context.Context, investor *entity.Investor) error
	ClearExpiredSubscription(ctx context.Context, id string, now time.Time) (bool, error)
	ListExpiredSubscribed(ctx context.Context, now time.Time) ([]*entity.Investor, error)
}

type subscriptionRecordRepository interface {
	Create(ctx context.Context, record *entity.SubscriptionRecord) error
	UpdateLatestStatus(ctx context.Context, investorID, status string, updatedAt time.Time) (bool, error)
	ListByInvestor(ctx context.Context, investorID string) ([]*entity.SubscriptionRecord, error)
}

type transactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}

type gateCache interface {
	Get(ctx context.Context, investorID string) (*cache.GateEntry, error)
	Version(ctx context.Context, investorID string) (int64, error)
	Set(ctx context.Context, investorID string, entry cache.GateEntry, ttl time.Duration, version int64) error
	Invalidate(ctx context.Context, investorID string) error
}

type metricsRecorder interface {
	ObserveOperation(operation, outcome string)
	ObserveGateCheck(result, source string)
	ObservePayment(result string)
	ObserveExpired(count int)
}

func NewSubscriptionService(
	investorRepo investorRepository,
	recordRepo subscriptionRecordRepository,
	transactor transactor,
	paymentService payment.Service,
	gateCache gateCache,
	plans *catalog.Catalog,
	metrics metricsRecorder,
	cfg config.SubscriptionConfig,
) *SubscriptionService {
	if gateCache == nil {
		gateCache = cache.NoopGateCache{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	return &SubscriptionService{
		investorRepo:   investorRepo,
		recordRepo:     recordRepo,
		transactor:     transactor,
		paymentService: paymentService,
		gateCache:      gateCache,
		plans:          plans,
		metrics:        metrics,
		cfg:            cfg,
		logger:         factory.NewModuleLogger("subscription-service"),
		now:            time.Now,
	}
}

func (s *SubscriptionService) ListPlans() []entity.Plan {
	return s.plans.Plans()
}

func (s *SubscriptionService) Subscribe(ctx context.Context, req subscribeRequest) (*SubscribeResult, error) {
	result, err := s.subscribe(ctx, req)
	s.observe("subscribe", err)
	return result, err
}

func (s *SubscriptionService) subscribe(ctx context.Context, req subscribeRequest) (*SubscribeResult, error) {
	investorID := strings.TrimSpace(req.GetInvestorId())
	if investorID == "" {
		return nil, fmt.Errorf("%w: investor_id is required", ErrInvalidRequest)
	}
	plan, ok := s.plans.Find(req.GetPlanType())
	if !ok {
		return nil, ErrInvalidPlan
	}

	investor, err := s.investorRepo.FindByID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if investor == nil {
		return nil, ErrInvestorNotFound
	}

	details := req.GetPaymentDetails()
	payResult, err := s.processPaymentSafely(ctx, payment.ChargeRequest{
		InvestorID:  investor.ID,
		PlanCode:    plan.Code,
		AmountCents: plan.PriceCents,
		Currency:    plan.Currency,
		Details: payment.Details{
			PaymentMethod:  strings.TrimSpace(details.GetPaymentMethod()),
			CardholderName: strings.TrimSpace(details.GetCardholderName()),
			BillingEmail:   strings.TrimSpace(details.GetBillingEmail()),
		},
	})
	if err != nil {
		s.metrics.ObservePayment(outcomeFailure)
		return nil, err
	}
	if !payResult.Succeeded() {
		s.metrics.ObservePayment(outcomeFailure)
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, paymentFailureMessage(payResult))
	}
	s.metrics.ObservePayment(outcomeSuccess)

	now := s.now().In(s.cfg.Location)
	expiry := now.AddDate(0, 0, plan.DurationDays)
	planName := strings.ToLower(plan.Code)

	investor.HasForeclosureSubscription = true
	investor.ForeclosureSubscriptionExpiry = &expiry
	investor.SubscriptionPlan = &planName
	investor.UpdatedAt = now

	record := &entity.SubscriptionRecord{
		InvestorID:    investor.ID,
		PlanType:      plan.Code,
		StartDate:     now,
		ExpiryDate:    expiry,
		Status:        entity.SubscriptionRecordStatusActive,
		PriceCents:    plan.PriceCents,
		Currency:      plan.Currency,
		TransactionID: payResult.TransactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.transactor.Transact(ctx, func(ctx context.Context) error {
		if err := s.investorRepo.UpdateSubscription(ctx, investor); err != nil {
			return err
		}
		return s.recordRepo.Create(ctx, record)
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvestorNotFound) {
			return nil, ErrInvestorNotFound
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"investor_id":    investor.ID,
			"transaction_id": payResult.TransactionID,
		}).Error("Persisting paid subscription failed")
		return nil, err
	}

	s.invalidateGate(ctx, investor.ID)

	return &SubscribeResult{
		Record:   record,
		Investor: investor,
		Plan:     plan,
		Status:   activeStatus(expiry, planName, now),
	}, nil
}

// CheckSubscription answers the access gate. An unknown investor is reported as
// not subscribed. An expired subscription is cleared on read.
func (s *SubscriptionService) CheckSubscription(ctx context.Context, investorID string) (*SubscriptionStatus, error) {
	status, err := s.checkSubscription(ctx, investorID)
	s.observe("check_subscription", err)
	return status, err
}

func (s *SubscriptionService) checkSubscription(ctx context.Context, investorID string) (*SubscriptionStatus, error) {
	investorID = strings.TrimSpace(investorID)
	if investorID == "" {
		return nil, fmt.Errorf("%w: investor_id is required", ErrInvalidRequest)
	}

	now := s.now()
	if entry := s.cachedGate(ctx, investorID); entry != nil && entry.ExpiryDate.After(now) {
		s.metrics.ObserveGateCheck("granted", gateSourceCache)
		status := activeStatus(entry.ExpiryDate, entry.PlanType, now)
		return &status, nil
	}

	// Read before the directory so a concurrent invalidation voids our fill.
	version, versionErr := s.gateCache.Version(ctx, investorID)
	if versionErr != nil {
		s.logger.WithError(versionErr).WithField("investor_id", investorID).Warn("Reading gate cache version failed")
	}

	investor, err := s.investorRepo.FindByID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if investor == nil || !investor.HasForeclosureSubscription {
		s.metrics.ObserveGateCheck("denied", gateSourceDirectory)
		return &SubscriptionStatus{HasSubscription: false}, nil
	}

	expiry := investor.ForeclosureSubscriptionExpiry
	if expiry == nil || expiry.Before(now) {
		cleared, err := s.investorRepo.ClearExpiredSubscription(ctx, investorID, now)
		if err != nil {
			s.logger.WithError(err).WithField("investor_id", investorID).Warn("Clearing expired subscription flag failed")
		} else if !cleared {
			s.logger.WithField("investor_id", investorID).Debug("Subscription renewed before the expired flag was cleared")
		}
		s.invalidateGate(ctx, investorID)
		s.metrics.ObserveGateCheck("expired", gateSourceDirectory)
		return &SubscriptionStatus{HasSubscription: false}, nil
	}

	planType := ""
	if investor.SubscriptionPlan != nil {
		planType = *investor.SubscriptionPlan
	}
	if versionErr == nil {
		ttl := s.cfg.GateCacheTTL
		if remaining := expiry.Sub(now); remaining < ttl {
			ttl = remaining
		}
		entry := cache.GateEntry{ExpiryDate: *expiry, PlanType: planType}
		if err := s.gateCache.Set(ctx, investorID, entry, ttl, version); err != nil {
			s.logger.WithError(err).WithField("investor_id", investorID).Warn("Caching gate decision failed")
		}
	}

	s.metrics.ObserveGateCheck("granted", gateSourceDirectory)
	status := activeStatus(*expiry, planType, now)
	return &status, nil
}

func (s *SubscriptionService) CancelSubscription(ctx context.Context, investorID string) (*CancelResult, error) {
	result, err := s.cancelSubscription(ctx, investorID)
	s.observe("cancel", err)
	return result, err
}

func (s *SubscriptionService) cancelSubscription(ctx context.Context, investorID string) (*CancelResult, error) {
	investorID = strings.TrimSpace(investorID)
	if investorID == "" {
		return nil, fmt.Errorf("%w: investor_id is required", ErrInvalidRequest)
	}

	investor, err := s.investorRepo.FindByID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if investor == nil {
		return nil, ErrInvestorNotFound
	}

	now := s.now()
	investor.HasForeclosureSubscription = false
	investor.UpdatedAt = now

	result := &CancelResult{Investor: investor}
	err = s.transactor.Transact(ctx, func(ctx context.Context) error {
		if err := s.investorRepo.UpdateSubscription(ctx, investor); err != nil {
			return err
		}
		cancelled, err := s.recordRepo.UpdateLatestStatus(ctx, investor.ID, entity.SubscriptionRecordStatusCancelled, now)
		if err != nil {
			return err
		}
		result.RecordCancelled = cancelled
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvestorNotFound) {
			return nil, ErrInvestorNotFound
		}
		return nil, err
	}

	s.invalidateGate(ctx, investor.ID)
	return result, nil
}

func (s *SubscriptionService) ListSubscriptionRecords(ctx context.Context, investorID string) ([]*entity.SubscriptionRecord, error) {
	investorID = strings.TrimSpace(investorID)
	if investorID == "" {
		return nil, fmt.Errorf("%w: investor_id is required", ErrInvalidRequest)
	}

	investor, err := s.investorRepo.FindByID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if investor == nil {
		return nil, ErrInvestorNotFound
	}

	return s.recordRepo.ListByInvestor(ctx, investorID)
}

// RunExpirationBatch clears the flag of every investor whose subscription has
// lapsed without being read since.
func (s *SubscriptionService) RunExpirationBatch(ctx context.Context) error {
	now := s.now()
	items, err := s.investorRepo.ListExpiredSubscribed(ctx, now)
	if err != nil {
		return err
	}

	cleared := 0
	for _, item := range items {
		ok, err := s.investorRepo.ClearExpiredSubscription(ctx, item.ID, now)
		if err != nil {
			s.logger.WithError(err).WithField("investor_id", item.ID).Warn("Expiring subscription failed")
			continue
		}
		if !ok {
			continue
		}
		s.invalidateGate(ctx, item.ID)
		cleared++
	}

	s.metrics.ObserveExpired(cleared)
	s.logger.WithField("candidates", len(items)).WithField("cleared", cleared).Info("Expiration batch finished")
	return nil
}

func (s *SubscriptionService) processPaymentSafely(ctx context.Context, req payment.ChargeRequest) (_ payment.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("payment processing failed: %v", rec)
		}
	}()

	return s.paymentService.Charge(ctx, req), nil
}

func (s *SubscriptionService) cachedGate(ctx context.Context, investorID string) *cache.GateEntry {
	entry, err := s.gateCache.Get(ctx, investorID)
	if err != nil {
		s.logger.WithError(err).WithField("investor_id", investorID).Warn("Reading gate cache failed")
		return nil
	}
	return entry
}

func (s *SubscriptionService) invalidateGate(ctx context.Context, investorID string) {
	if err := s.gateCache.Invalidate(ctx, investorID); err != nil {
		s.logger.WithError(err).WithField("investor_id", investorID).Warn("Invalidating gate cache failed")
	}
}

func (s *SubscriptionService) observe(operation string, err error) {
	if err != nil {
		s.metrics.ObserveOperation(operation, outcomeFailure)
		return
	}
	s.metrics.ObserveOperation(operation, outcomeSuccess)
}

func activeStatus(expiry time.Time, planType string, now time.Time) SubscriptionStatus {
	return SubscriptionStatus{
		HasSubscription: true,
		ExpiryDate:      &expiry,
		DaysRemaining:   daysRemaining(expiry, now),
		PlanType:        planType,
	}
}

// daysRemaining counts a partial day as a full one.
func daysRemaining(expiry, now time.Time) int32 {
	remaining := expiry.Sub(now)
	if remaining <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	return int32((remaining + day - 1) / day)
}

func paymentFailureMessage(result payment.Result) string {
	if msg := strings.TrimSpace(result.Error); msg != "" {
		return msg
	}
	return "payment was declined"
}

type noopMetrics struct{}

func (noopMetrics) ObserveOperation(string, string) {}

func (noopMetrics) ObserveGateCheck(string, string) {}

func (noopMetrics) ObservePayment(string) {}

func (noopMetrics) ObserveExpired(int) {}
