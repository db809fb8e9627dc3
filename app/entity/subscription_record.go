package entity

import "time"

const (
	SubscriptionRecordStatusActive    = "active"
	SubscriptionRecordStatusCancelled = "cancelled"
)

type SubscriptionRecord struct {
	ID            uint64
	InvestorID    string
	PlanType      string
	StartDate     time.Time
	ExpiryDate    time.Time
	Status        string
	PriceCents    int64
	Currency      string
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
