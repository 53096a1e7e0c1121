package forms

import (
	"math"
	"strings"
	"time"

	"github.com/streamvid/adminweb/app/models"
)

// PlanDuration maps a plan name to its fixed duration in days. The duration
// is never user-editable; the lookup always wins. Unknown names return 0.
func PlanDuration(planName string) int {
	switch strings.ToLower(strings.TrimSpace(planName)) {
	case models.PlanMonthly:
		return 30
	case models.PlanHalfYearly:
		return 180
	case models.PlanYearly:
		return 365
	default:
		return 0
	}
}

// FinalPrice is price minus discount, rounded to two decimals. Negative
// results are left visible; submit validation rejects discount > price.
func FinalPrice(price, discount float64) float64 {
	return math.Round((price-discount)*100) / 100
}

// EndDate adds a plan duration to a start date.
// 2024-01-01 with 30 days gives 2024-01-31.
func EndDate(start time.Time, durationDays int) time.Time {
	return start.AddDate(0, 0, durationDays)
}
