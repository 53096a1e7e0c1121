package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/streamvid/adminweb/app/models"
	"github.com/streamvid/adminweb/internal/pkg/api"
	"github.com/streamvid/adminweb/internal/pkg/constants"
	"github.com/streamvid/adminweb/internal/pkg/export"
	"github.com/streamvid/adminweb/internal/pkg/forms"
	"github.com/streamvid/adminweb/internal/pkg/listing"
	"github.com/streamvid/adminweb/internal/pkg/viewmodel"
)

const (
	subCacheKey        = "subscriptions.items"
	subPackageCacheKey = "subscriptions.packages"
	subPlanCacheKey    = "subscriptions.plans"
	subStateKey        = "subscriptions.state"
)

func subscriptionPipeline(packageNames map[string]string) listing.Pipeline[models.Subscription] {
	return listing.Pipeline[models.Subscription]{
		Fields: []listing.SearchField[models.Subscription]{
			{Name: "studentId", Value: func(s models.Subscription) string { return s.StudentID }},
			{Name: "packageName", Value: func(s models.Subscription) string { return packageNames[s.PackageID] }},
		},
		CreatedAt: func(s models.Subscription) time.Time { return s.CreatedAt.Time },
	}
}

func HandleSubscriptions(c *fiber.Ctx) error {
	st := listing.NewState()
	items := loadList[models.Subscription](c, api.Subscriptions, subCacheKey)
	packages := loadList[models.Package](c, api.Packages, subPackageCacheKey)
	plans := loadList[models.MembershipPlan](c, api.MembershipPlans, subPlanCacheKey)
	return renderSubscriptionIndex(c, items, packages, plans, st)
}

func renderSubscriptionIndex(c *fiber.Ctx, items []models.Subscription, packages []models.Package, plans []models.MembershipPlan, st listing.State) error {
	names := packageNameMap(packages)
	res := subscriptionPipeline(names).Apply(items, st)
	st.Page = res.Page
	saveState(c, subStateKey, st)

	return c.Render("subscriptions/index", fiber.Map{
		"Title":        "Subscriptions",
		"Base":         constants.SubscriptionsRoute,
		"Active":       "subscriptions",
		"Flash":        flash.Get(c),
		"Meta":         viewmodel.NewListMeta(res, st),
		"Rows":         res.Rows,
		"PackageNames": names,
		"PlanNames":    planNameMap(plans),
	})
}

func cachedSubscriptionScreen(c *fiber.Ctx) ([]models.Subscription, []models.Package, []models.MembershipPlan) {
	items := cachedList[models.Subscription](c, api.Subscriptions, subCacheKey)
	packages := cachedList[models.Package](c, api.Packages, subPackageCacheKey)
	plans := cachedList[models.MembershipPlan](c, api.MembershipPlans, subPlanCacheKey)
	return items, packages, plans
}

func HandleSubscriptionSearch(c *fiber.Ctx) error {
	st := screenState(c, subStateKey)
	st.Search = map[string]string{
		"studentId":   c.FormValue("studentId"),
		"packageName": c.FormValue("packageName"),
	}
	st.Page = 1
	items, packages, plans := cachedSubscriptionScreen(c)
	return renderSubscriptionIndex(c, items, packages, plans, st)
}

func HandleSubscriptionReset(c *fiber.Ctx) error {
	items, packages, plans := cachedSubscriptionScreen(c)
	return renderSubscriptionIndex(c, items, packages, plans, listing.NewState())
}

func HandleSubscriptionPage(c *fiber.Ctx) error {
	st := screenState(c, subStateKey)
	st.Page, _ = strconv.Atoi(c.Params("page"))
	items, packages, plans := cachedSubscriptionScreen(c)
	return renderSubscriptionIndex(c, items, packages, plans, st)
}

func HandleSubscriptionPageSize(c *fiber.Ctx) error {
	st := screenState(c, subStateKey)
	st.PageSize = formInt(c, "page_size")
	st.Page = 1
	items, packages, plans := cachedSubscriptionScreen(c)
	return renderSubscriptionIndex(c, items, packages, plans, st)
}

func HandleSubscriptionCreate(c *fiber.Ctx) error {
	packages := cachedList[models.Package](c, api.Packages, subPackageCacheKey)
	return c.Render("subscriptions/add", fiber.Map{
		"Title":    "Add Subscription",
		"Active":   "subscriptions",
		"Flash":    flash.Get(c),
		"Packages": activePackages(packages),
	})
}

// HandleSubscriptionPlanOptions returns the active plans of one package as
// JSON for the dependent plan dropdown on the subscription form.
func HandleSubscriptionPlanOptions(c *fiber.Ctx) error {
	body, err := apiClient.PlansForPackage(c.UserContext(), c.Params("packageId"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": api.UserMessage(err)})
	}

	plans := listing.DecodeList[models.MembershipPlan](body, api.MembershipPlans.PluralKey)
	options := make([]fiber.Map, 0, len(plans))
	for _, plan := range plans {
		if !plan.IsActive() {
			continue
		}
		options = append(options, fiber.Map{
			"id":         plan.ID,
			"planName":   plan.PlanName,
			"price":      plan.Price,
			"discount":   plan.Discount,
			"finalPrice": plan.FinalPrice,
			"duration":   plan.Duration,
		})
	}
	return c.JSON(options)
}

func HandleSubscriptionStore(c *fiber.Ctx) error {
	return submitSubscription(c, "", constants.SubscriptionsRoute+"/create")
}

func HandleSubscriptionEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := apiClient.Get(c.UserContext(), api.Subscriptions, id)
	if err != nil {
		return flashError(c, api.UserMessage(err), constants.SubscriptionsRoute)
	}
	sub, ok := listing.DecodeOne[models.Subscription](body, "data", "subscription")
	if !ok || sub.ID == "" {
		return flashError(c, "Subscription not found", constants.SubscriptionsRoute)
	}

	packages := cachedList[models.Package](c, api.Packages, subPackageCacheKey)
	return c.Render("subscriptions/edit", fiber.Map{
		"Title":    "Edit Subscription",
		"Active":   "subscriptions",
		"Flash":    flash.Get(c),
		"Sub":      sub,
		"Packages": activePackages(packages),
	})
}

func HandleSubscriptionUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	return submitSubscription(c, id, constants.SubscriptionsRoute+"/edit/"+id)
}

// submitSubscription is the shared create/update path. The price, discount,
// finalPrice and video_limit snapshots are taken server-side from the
// selected plan and package at submit time; whatever the form displayed is
// not trusted. endDate is startDate plus the plan's duration.
func submitSubscription(c *fiber.Ctx, id, errRedirect string) error {
	form := forms.SubscriptionForm{
		StudentID:    c.FormValue("student_id"),
		PackageID:    c.FormValue("packageId"),
		MembershipID: c.FormValue("membership_id"),
		StartDate:    c.FormValue("startDate"),
	}
	if msg := form.Validate(); msg != "" {
		return flashError(c, msg, errRedirect)
	}

	body, err := apiClient.PlansForPackage(c.UserContext(), form.PackageID)
	if err != nil {
		return flashError(c, api.UserMessage(err), errRedirect)
	}
	var plan models.MembershipPlan
	found := false
	for _, p := range listing.DecodeList[models.MembershipPlan](body, api.MembershipPlans.PluralKey) {
		if p.ID == form.MembershipID {
			plan = p
			found = true
			break
		}
	}
	if !found || !plan.IsActive() {
		return flashError(c, "Selected membership plan is not available for this package", errRedirect)
	}

	duration := plan.Duration
	if duration < 1 {
		duration = forms.PlanDuration(plan.PlanName)
	}
	if duration < 1 {
		return flashError(c, "Selected membership plan has no valid duration", errRedirect)
	}

	start, _ := time.Parse(models.DateLayout, form.StartDate)

	var videoLimit *int
	packages := cachedList[models.Package](c, api.Packages, subPackageCacheKey)
	for _, p := range packages {
		if p.ID == form.PackageID {
			videoLimit = p.VideoLimit
			break
		}
	}

	payload := fiber.Map{
		"student_id":    form.StudentID,
		"packageId":     form.PackageID,
		"membership_id": form.MembershipID,
		"price":         plan.Price,
		"discount":      plan.Discount,
		"finalPrice":    plan.FinalPrice,
		"startDate":     form.StartDate,
		"endDate":       forms.EndDate(start, duration).Format(models.DateLayout),
		"video_limit":   videoLimit,
	}

	if id == "" {
		if err := apiClient.Create(c.UserContext(), api.Subscriptions, payload); err != nil {
			return flashError(c, api.UserMessage(err), errRedirect)
		}
		return flashSuccess(c, "Subscription created successfully", constants.SubscriptionsRoute)
	}
	if err := apiClient.Update(c.UserContext(), api.Subscriptions, id, payload); err != nil {
		return flashError(c, api.UserMessage(err), errRedirect)
	}
	return flashSuccess(c, "Subscription updated successfully", constants.SubscriptionsRoute)
}

func HandleSubscriptionDelete(c *fiber.Ctx) error {
	if err := apiClient.Delete(c.UserContext(), api.Subscriptions, c.Params("id")); err != nil {
		return flashError(c, api.UserMessage(err), constants.SubscriptionsRoute)
	}
	return flashSuccess(c, "Subscription deleted successfully", constants.SubscriptionsRoute)
}

func HandleSubscriptionExport(c *fiber.Ctx) error {
	st := screenState(c, subStateKey)
	items, packages, plans := cachedSubscriptionScreen(c)
	names := packageNameMap(packages)
	planNames := planNameMap(plans)
	filtered := subscriptionPipeline(names).Filter(items, st)

	cols := []export.Column[models.Subscription]{
		{Header: "Student ID", Value: func(s models.Subscription) string { return s.StudentID }},
		{Header: "Package", Value: func(s models.Subscription) string { return names[s.PackageID] }},
		{Header: "Plan", Value: func(s models.Subscription) string { return planNames[s.MembershipID] }},
		{Header: "Price", Value: func(s models.Subscription) string { return money(s.Price) }},
		{Header: "Discount", Value: func(s models.Subscription) string { return money(s.Discount) }},
		{Header: "Final Price", Value: func(s models.Subscription) string { return money(s.FinalPrice) }},
		{Header: "Start Date", Value: func(s models.Subscription) string { return s.StartDate }},
		{Header: "End Date", Value: func(s models.Subscription) string { return s.EndDate }},
		{Header: "Created At", Value: func(s models.Subscription) string { return s.CreatedAt.Display() }},
	}
	return sendSheet(c, "Subscriptions", "subscriptions", cols, filtered, constants.SubscriptionsRoute)
}

func planNameMap(plans []models.MembershipPlan) map[string]string {
	names := make(map[string]string, len(plans))
	for _, p := range plans {
		names[p.ID] = p.PlanName
	}
	return names
}
