package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StubService approves every charge after an optional delay.
type StubService struct {
	delay time.Duration
}

func NewStubService(delay time.Duration) *StubService {
	return &StubService{delay: delay}
}

func (s *StubService) Charge(ctx context.Context, _ ChargeRequest) Result {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{Type: ResultTypeFailure, Error: ctx.Err().Error()}
		case <-timer.C:
		}
	}

	return Result{
		Type:          ResultTypeSuccess,
		TransactionID: fmt.Sprintf("stub-%s", uuid.NewString()),
	}
}
