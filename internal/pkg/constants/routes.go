package constants

// Static route constants
const (
	DashboardRoute     = "/"
	PackagesRoute      = "/packages"
	PlansRoute         = "/plans"
	SubscriptionsRoute = "/subscriptions"
	VideosRoute        = "/videos"
)
