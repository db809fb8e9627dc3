package payment

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestStubServiceSucceeds(t *testing.T) {
	svc := NewStubService(0)

	result := svc.Charge(context.Background(), ChargeRequest{InvestorID: "inv-1", AmountCents: 2999})
	if !result.Succeeded() {
		t.Fatalf("expected success, got %+v", result)
	}
	if !strings.HasPrefix(result.TransactionID, "stub-") {
		t.Fatalf("expected stub- transaction id, got %q", result.TransactionID)
	}
}

func TestStubServiceWaitsForDelay(t *testing.T) {
	svc := NewStubService(20 * time.Millisecond)

	start := time.Now()
	result := svc.Charge(context.Background(), ChargeRequest{})
	if !result.Succeeded() {
		t.Fatalf("expected success, got %+v", result)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatal("expected stub to honour the configured delay")
	}
}

func TestStubServiceHonoursCancellation(t *testing.T) {
	svc := NewStubService(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := svc.Charge(ctx, ChargeRequest{})
	if result.Succeeded() {
		t.Fatal("expected failure for cancelled context")
	}
	if result.Error == "" {
		t.Fatal("expected failure message")
	}
}
