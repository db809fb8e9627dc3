package entity

import "time"

// Investor is owned by the investor directory; this service only touches the
// foreclosure subscription fields.
type Investor struct {
	ID                            string
	Email                         string
	HasForeclosureSubscription    bool
	ForeclosureSubscriptionExpiry *time.Time
	SubscriptionPlan              *string
	CreatedAt                     time.Time
	UpdatedAt                     time.Time
}
