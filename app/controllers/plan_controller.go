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
	planCacheKey        = "plans.items"
	planPackageCacheKey = "plans.packages"
	planStateKey        = "plans.state"
)

// planPipeline closes over the package-name lookup so the package column is
// searchable by name, not id.
func planPipeline(packageNames map[string]string) listing.Pipeline[models.MembershipPlan] {
	return listing.Pipeline[models.MembershipPlan]{
		Fields: []listing.SearchField[models.MembershipPlan]{
			{Name: "planName", Value: func(m models.MembershipPlan) string { return m.PlanName }},
			{Name: "packageName", Value: func(m models.MembershipPlan) string { return packageNames[m.PackageID] }},
		},
		Status:    func(m models.MembershipPlan) string { return m.Status },
		CreatedAt: func(m models.MembershipPlan) time.Time { return m.CreatedAt.Time },
	}
}

func HandlePlans(c *fiber.Ctx) error {
	st := listing.NewState()
	items := loadList[models.MembershipPlan](c, api.MembershipPlans, planCacheKey)
	packages := loadList[models.Package](c, api.Packages, planPackageCacheKey)
	return renderPlanIndex(c, items, packages, st)
}

func renderPlanIndex(c *fiber.Ctx, items []models.MembershipPlan, packages []models.Package, st listing.State) error {
	names := packageNameMap(packages)
	res := planPipeline(names).Apply(items, st)
	st.Page = res.Page
	saveState(c, planStateKey, st)

	return c.Render("plans/index", fiber.Map{
		"Title":        "Membership Plans",
		"Base":         constants.PlansRoute,
		"Active":       "plans",
		"Flash":        flash.Get(c),
		"Meta":         viewmodel.NewListMeta(res, st),
		"Rows":         res.Rows,
		"PackageNames": names,
	})
}

func cachedPlanScreen(c *fiber.Ctx) ([]models.MembershipPlan, []models.Package) {
	items := cachedList[models.MembershipPlan](c, api.MembershipPlans, planCacheKey)
	packages := cachedList[models.Package](c, api.Packages, planPackageCacheKey)
	return items, packages
}

func HandlePlanSearch(c *fiber.Ctx) error {
	st := screenState(c, planStateKey)
	st.Search = map[string]string{
		"planName":    c.FormValue("planName"),
		"packageName": c.FormValue("packageName"),
	}
	st.Status = c.FormValue("status", listing.StatusAll)
	st.Page = 1
	items, packages := cachedPlanScreen(c)
	return renderPlanIndex(c, items, packages, st)
}

func HandlePlanReset(c *fiber.Ctx) error {
	items, packages := cachedPlanScreen(c)
	return renderPlanIndex(c, items, packages, listing.NewState())
}

func HandlePlanPage(c *fiber.Ctx) error {
	st := screenState(c, planStateKey)
	st.Page, _ = strconv.Atoi(c.Params("page"))
	items, packages := cachedPlanScreen(c)
	return renderPlanIndex(c, items, packages, st)
}

func HandlePlanPageSize(c *fiber.Ctx) error {
	st := screenState(c, planStateKey)
	st.PageSize = formInt(c, "page_size")
	st.Page = 1
	items, packages := cachedPlanScreen(c)
	return renderPlanIndex(c, items, packages, st)
}

func HandlePlanCreate(c *fiber.Ctx) error {
	packages := cachedList[models.Package](c, api.Packages, planPackageCacheKey)
	return c.Render("plans/add", fiber.Map{
		"Title":    "Add Membership Plan",
		"Active":   "plans",
		"Flash":    flash.Get(c),
		"Packages": activePackages(packages),
	})
}

func HandlePlanStore(c *fiber.Ctx) error {
	form := planFormFromRequest(c)
	if msg := form.Validate(); msg != "" {
		return flashError(c, msg, constants.PlansRoute+"/create")
	}

	if err := apiClient.Create(c.UserContext(), api.MembershipPlans, planPayload(form)); err != nil {
		return flashError(c, api.UserMessage(err), constants.PlansRoute+"/create")
	}
	return flashSuccess(c, "Membership plan created successfully", constants.PlansRoute)
}

func HandlePlanEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := apiClient.Get(c.UserContext(), api.MembershipPlans, id)
	if err != nil {
		return flashError(c, api.UserMessage(err), constants.PlansRoute)
	}
	plan, ok := listing.DecodeOne[models.MembershipPlan](body, "data", "membershipPlan")
	if !ok || plan.ID == "" {
		return flashError(c, "Membership plan not found", constants.PlansRoute)
	}

	packages := cachedList[models.Package](c, api.Packages, planPackageCacheKey)
	return c.Render("plans/edit", fiber.Map{
		"Title":    "Edit Membership Plan",
		"Active":   "plans",
		"Flash":    flash.Get(c),
		"Plan":     plan,
		"Packages": activePackages(packages),
	})
}

func HandlePlanUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	form := planFormFromRequest(c)
	if msg := form.Validate(); msg != "" {
		return flashError(c, msg, constants.PlansRoute+"/edit/"+id)
	}

	if err := apiClient.Update(c.UserContext(), api.MembershipPlans, id, planPayload(form)); err != nil {
		return flashError(c, api.UserMessage(err), constants.PlansRoute+"/edit/"+id)
	}
	return flashSuccess(c, "Membership plan updated successfully", constants.PlansRoute)
}

func HandlePlanDelete(c *fiber.Ctx) error {
	if err := apiClient.Delete(c.UserContext(), api.MembershipPlans, c.Params("id")); err != nil {
		return flashError(c, api.UserMessage(err), constants.PlansRoute)
	}
	return flashSuccess(c, "Membership plan deleted successfully", constants.PlansRoute)
}

func HandlePlanStatusToggle(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := apiClient.Get(c.UserContext(), api.MembershipPlans, id)
	if err != nil {
		return flashError(c, api.UserMessage(err), constants.PlansRoute)
	}
	plan, ok := listing.DecodeOne[models.MembershipPlan](body, "data", "membershipPlan")
	if !ok || plan.ID == "" {
		return flashError(c, "Membership plan not found", constants.PlansRoute)
	}

	payload := fiber.Map{"status": toggledStatus(plan.Status)}
	if err := apiClient.Update(c.UserContext(), api.MembershipPlans, id, payload); err != nil {
		return flashError(c, api.UserMessage(err), constants.PlansRoute)
	}
	return flashSuccess(c, "Membership plan status updated", constants.PlansRoute)
}

func HandlePlanExport(c *fiber.Ctx) error {
	st := screenState(c, planStateKey)
	items, packages := cachedPlanScreen(c)
	names := packageNameMap(packages)
	filtered := planPipeline(names).Filter(items, st)

	cols := []export.Column[models.MembershipPlan]{
		{Header: "Package", Value: func(m models.MembershipPlan) string { return names[m.PackageID] }},
		{Header: "Plan Name", Value: func(m models.MembershipPlan) string { return m.PlanName }},
		{Header: "Price", Value: func(m models.MembershipPlan) string { return money(m.Price) }},
		{Header: "Discount", Value: func(m models.MembershipPlan) string { return money(m.Discount) }},
		{Header: "Final Price", Value: func(m models.MembershipPlan) string { return money(m.FinalPrice) }},
		{Header: "Duration (days)", Value: func(m models.MembershipPlan) string { return strconv.Itoa(m.Duration) }},
		{Header: "Status", Value: func(m models.MembershipPlan) string { return m.Status }},
		{Header: "Created At", Value: func(m models.MembershipPlan) string { return m.CreatedAt.Display() }},
	}
	return sendSheet(c, "Membership Plans", "membership-plans", cols, filtered, constants.PlansRoute)
}

func planFormFromRequest(c *fiber.Ctx) forms.PlanForm {
	return forms.PlanForm{
		PackageID: c.FormValue("package_id"),
		PlanName:  c.FormValue("planName"),
		Price:     formFloat(c, "price"),
		Discount:  formFloat(c, "discount"),
		Position:  formInt(c, "position"),
		Status:    c.FormValue("status"),
	}
}

// planPayload derives duration and finalPrice server-side; the form's
// read-only fields are never trusted.
func planPayload(form forms.PlanForm) fiber.Map {
	return fiber.Map{
		"package_id": form.PackageID,
		"planName":   form.PlanName,
		"price":      form.Price,
		"discount":   form.Discount,
		"finalPrice": forms.FinalPrice(form.Price, form.Discount),
		"duration":   forms.PlanDuration(form.PlanName),
		"position":   form.Position,
		"status":     form.Status,
	}
}

func activePackages(packages []models.Package) []models.Package {
	out := make([]models.Package, 0, len(packages))
	for _, p := range packages {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}
