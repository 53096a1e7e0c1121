package models

const (
	PlanMonthly    = "monthly"
	PlanHalfYearly = "half-yearly"
	PlanYearly     = "yearly"
)

// MembershipPlan is a priced billing tier inside a package. finalPrice and
// duration are derived server-side too, but the backend stores them as plain
// fields, so they round-trip as-is.
type MembershipPlan struct {
	ID         string  `json:"id"`
	PackageID  string  `json:"package_id"`
	PlanName   string  `json:"planName"`
	Price      float64 `json:"price"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"finalPrice"`
	Duration   int     `json:"duration"`
	Position   int     `json:"position"`
	Status     string  `json:"status"`
	CreatedAt  ApiTime `json:"createdAt"`
}

func (m MembershipPlan) IsActive() bool {
	return m.Status == StatusActive
}
