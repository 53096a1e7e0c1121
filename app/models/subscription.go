package models

// Subscription links a student to a membership plan. Price, discount,
// finalPrice and video_limit are snapshots copied from the plan and package at
// creation time; later plan edits must not affect existing subscriptions.
type Subscription struct {
	ID           string  `json:"id"`
	StudentID    string  `json:"student_id"`
	PackageID    string  `json:"packageId"`
	MembershipID string  `json:"membership_id"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	FinalPrice   float64 `json:"finalPrice"`
	StartDate    string  `json:"startDate"` // DateLayout
	EndDate      string  `json:"endDate"`   // DateLayout, startDate + plan duration
	VideoLimit   *int    `json:"video_limit"`
	CreatedAt    ApiTime `json:"createdAt"`
}
