package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/streamvid/adminweb/app/models"
	"github.com/streamvid/adminweb/internal/pkg/api"
	"github.com/streamvid/adminweb/internal/pkg/listing"
	"github.com/streamvid/adminweb/internal/pkg/metrics/counter"
)

// HandleDashboard renders the landing page with per-entity record counts.
func HandleDashboard(c *fiber.Ctx) error {
	counts := fiber.Map{
		"Packages":      resourceCount[models.Package](c, api.Packages),
		"Plans":         resourceCount[models.MembershipPlan](c, api.MembershipPlans),
		"Subscriptions": resourceCount[models.Subscription](c, api.Subscriptions),
		"Videos":        resourceCount[models.Video](c, api.Videos),
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":           "Dashboard",
		"Active":          "dashboard",
		"Flash":           flash.Get(c),
		"Counts":          counts,
		"BackendRequests": counter.Requests(),
		"BackendFailures": counter.Failures(),
	})
}

func resourceCount[T any](c *fiber.Ctx, res api.Resource) int {
	body, err := apiClient.List(c.UserContext(), res)
	if err != nil {
		log.Warnf("dashboard count failed for %s: %v", res.Path, err)
		return 0
	}
	return len(listing.DecodeList[T](body, res.PluralKey))
}
