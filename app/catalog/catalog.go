package catalog

import (
	"strings"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/entity"
)

// Catalog is the fixed set of foreclosure-data plans offered to investors.
type Catalog struct {
	plans []entity.Plan
}

func New(currency string) *Catalog {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}

	return &Catalog{plans: []entity.Plan{
		{Code: entity.PlanCodeMonthly, Name: "Monthly", PriceCents: 2999, Currency: currency, DurationDays: 30},
		{Code: entity.PlanCodeQuarterly, Name: "Quarterly", PriceCents: 7999, Currency: currency, DurationDays: 90},
		{Code: entity.PlanCodeYearly, Name: "Yearly", PriceCents: 29999, Currency: currency, DurationDays: 365},
	}}
}

// Plans returns a copy ordered monthly, quarterly, yearly.
func (c *Catalog) Plans() []entity.Plan {
	out := make([]entity.Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

func (c *Catalog) Find(code string) (entity.Plan, bool) {
	normalized := NormalizeCode(code)
	for _, plan := range c.plans {
		if plan.Code == normalized {
			return plan, true
		}
	}
	return entity.Plan{}, false
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
