package dto

type PlanResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
	Currency     string `json:"currency"`
	DurationDays int    `json:"duration_days"`
}

type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

type SubscriptionRecordResponse struct {
	ID            uint64 `json:"id"`
	InvestorID    string `json:"investor_id"`
	PlanType      string `json:"plan_type"`
	StartDate     string `json:"start_date"`
	ExpiryDate    string `json:"expiry_date"`
	Status        string `json:"status"`
	PriceCents    int64  `json:"price_cents"`
	Currency      string `json:"currency"`
	TransactionID string `json:"transaction_id,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type ListSubscriptionRecordsResponse struct {
	Records []SubscriptionRecordResponse `json:"records"`
}

// SubscriptionStatusResponse only carries the expiry fields for an active subscription.
type SubscriptionStatusResponse struct {
	HasSubscription bool    `json:"has_subscription"`
	ExpiryDate      *string `json:"expiry_date,omitempty"`
	DaysRemaining   *int32  `json:"days_remaining,omitempty"`
	PlanType        *string `json:"plan_type,omitempty"`
}

type SubscribeResponse struct {
	Success        bool                       `json:"success"`
	Message        string                     `json:"message"`
	Subscription   SubscriptionRecordResponse `json:"subscription"`
	InvestorStatus SubscriptionStatusResponse `json:"investor_status"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
