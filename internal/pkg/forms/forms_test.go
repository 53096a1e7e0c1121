package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "monthly", want: 30},
		{in: "half-yearly", want: 180},
		{in: "yearly", want: 365},
		{in: "YEARLY", want: 365},
		{in: " monthly ", want: 30},
		{in: "weekly", want: 0},
		{in: "", want: 0},
	}

	for _, tt := range tests {
		if got := PlanDuration(tt.in); got != tt.want {
			t.Fatalf("PlanDuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFinalPrice(t *testing.T) {
	assert.Equal(t, 70.0, FinalPrice(100, 30))
	assert.Equal(t, 33.33, FinalPrice(49.99, 16.66))
	assert.Equal(t, 0.1, FinalPrice(0.3, 0.2)) // no float drift in display values
	assert.Equal(t, -10.0, FinalPrice(10, 20)) // display only; submit rejects this
}

func TestEndDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-31", EndDate(start, 30).Format("2006-01-02"))
	assert.Equal(t, "2024-06-29", EndDate(start, 180).Format("2006-01-02"))
	assert.Equal(t, "2024-12-31", EndDate(start, 365).Format("2006-01-02")) // leap year

	feb := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-29", EndDate(feb, 30).Format("2006-01-02"))
}

func TestPlanFormValidateOrder(t *testing.T) {
	form := PlanForm{}
	assert.Equal(t, "Package ID is required", form.Validate())

	form.PackageID = "p1"
	assert.Equal(t, "Plan name is required", form.Validate())

	form.PlanName = "weekly"
	assert.Equal(t, "Plan name has an invalid value", form.Validate())

	form.PlanName = "monthly"
	form.Price = -1
	assert.Equal(t, "Price must not be negative", form.Validate())

	form.Price = 100
	form.Status = "active"
	form.Discount = 150
	assert.Equal(t, "Discount cannot be greater than price", form.Validate())

	form.Discount = 30
	assert.Empty(t, form.Validate())
}

func TestPackageFormValidate(t *testing.T) {
	form := PackageForm{}
	assert.Equal(t, "Name is required", form.Validate())

	form.Name = "Basic"
	form.Status = "paused"
	assert.Equal(t, "Status has an invalid value", form.Validate())

	form.Status = "active"
	assert.Empty(t, form.Validate())

	neg := -5
	form.VideoLimit = &neg
	assert.Equal(t, "Video limit must not be negative", form.Validate())

	form.VideoLimit = nil // unlimited is fine
	form.Position = -1
	assert.Equal(t, "Position must not be negative", form.Validate())
}

func TestSubscriptionFormValidate(t *testing.T) {
	form := SubscriptionForm{StudentID: "s1", PackageID: "p1", MembershipID: "m1"}
	assert.Equal(t, "Start date is required", form.Validate())

	form.StartDate = "01/02/2024"
	assert.Equal(t, "Start date must be a valid date (YYYY-MM-DD)", form.Validate())

	form.StartDate = "2024-01-01"
	assert.Empty(t, form.Validate())
}

func TestVideoFormValidate(t *testing.T) {
	form := VideoForm{PackageID: "p1", VideoURL: "not a url", Status: "active"}
	assert.Equal(t, "Video URL must be a valid URL", form.Validate())

	form.VideoURL = "https://cdn.example.com/lesson-1.mp4"
	assert.Empty(t, form.Validate())
}
