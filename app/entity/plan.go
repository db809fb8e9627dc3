package entity

const (
	PlanCodeMonthly   = "MONTHLY"
	PlanCodeQuarterly = "QUARTERLY"
	PlanCodeYearly    = "YEARLY"
)

type Plan struct {
	Code         string
	Name         string
	PriceCents   int64
	Currency     string
	DurationDays int
}
