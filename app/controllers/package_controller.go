package controllers

import (
	"strconv"
	"strings"
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
	packageCacheKey = "packages.items"
	packageStateKey = "packages.state"
)

var packagePipeline = listing.Pipeline[models.Package]{
	Fields: []listing.SearchField[models.Package]{
		{Name: "name", Value: func(p models.Package) string { return p.Name }},
	},
	Status:    func(p models.Package) string { return p.Status },
	CreatedAt: func(p models.Package) time.Time { return p.CreatedAt.Time },
}

// HandlePackages renders the package index. Mounting the screen always
// refetches the collection and resets search and pagination.
func HandlePackages(c *fiber.Ctx) error {
	st := listing.NewState()
	items := loadList[models.Package](c, api.Packages, packageCacheKey)
	return renderPackageIndex(c, items, st)
}

func renderPackageIndex(c *fiber.Ctx, items []models.Package, st listing.State) error {
	res := packagePipeline.Apply(items, st)
	st.Page = res.Page
	saveState(c, packageStateKey, st)

	return c.Render("packages/index", fiber.Map{
		"Title":  "Packages",
		"Base":   constants.PackagesRoute,
		"Active": "packages",
		"Flash":  flash.Get(c),
		"Meta":   viewmodel.NewListMeta(res, st),
		"Rows":   res.Rows,
	})
}

// HandlePackageSearch recomputes the list from the cached collection; no
// backend round-trip.
func HandlePackageSearch(c *fiber.Ctx) error {
	st := screenState(c, packageStateKey)
	st.Search = map[string]string{"name": c.FormValue("name")}
	st.Status = c.FormValue("status", listing.StatusAll)
	st.Page = 1
	return renderPackageIndex(c, cachedList[models.Package](c, api.Packages, packageCacheKey), st)
}

func HandlePackageReset(c *fiber.Ctx) error {
	return renderPackageIndex(c, cachedList[models.Package](c, api.Packages, packageCacheKey), listing.NewState())
}

func HandlePackagePage(c *fiber.Ctx) error {
	st := screenState(c, packageStateKey)
	st.Page, _ = strconv.Atoi(c.Params("page"))
	return renderPackageIndex(c, cachedList[models.Package](c, api.Packages, packageCacheKey), st)
}

func HandlePackagePageSize(c *fiber.Ctx) error {
	st := screenState(c, packageStateKey)
	st.PageSize = formInt(c, "page_size")
	st.Page = 1
	return renderPackageIndex(c, cachedList[models.Package](c, api.Packages, packageCacheKey), st)
}

func HandlePackageCreate(c *fiber.Ctx) error {
	return c.Render("packages/add", fiber.Map{
		"Title":  "Add Package",
		"Active": "packages",
		"Flash":  flash.Get(c),
	})
}

func HandlePackageStore(c *fiber.Ctx) error {
	form := packageFormFromRequest(c)
	if msg := form.Validate(); msg != "" {
		return flashError(c, msg, constants.PackagesRoute+"/create")
	}

	if err := apiClient.Create(c.UserContext(), api.Packages, packagePayload(form)); err != nil {
		return flashError(c, api.UserMessage(err), constants.PackagesRoute+"/create")
	}
	return flashSuccess(c, "Package created successfully", constants.PackagesRoute)
}

func HandlePackageEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := apiClient.Get(c.UserContext(), api.Packages, id)
	if err != nil {
		return flashError(c, api.UserMessage(err), constants.PackagesRoute)
	}
	pkg, ok := listing.DecodeOne[models.Package](body, "data", "package")
	if !ok || pkg.ID == "" {
		return flashError(c, "Package not found", constants.PackagesRoute)
	}

	return c.Render("packages/edit", fiber.Map{
		"Title":  "Edit Package",
		"Active": "packages",
		"Flash":  flash.Get(c),
		"Pkg":    pkg,
	})
}

func HandlePackageUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	form := packageFormFromRequest(c)
	if msg := form.Validate(); msg != "" {
		return flashError(c, msg, constants.PackagesRoute+"/edit/"+id)
	}

	if err := apiClient.Update(c.UserContext(), api.Packages, id, packagePayload(form)); err != nil {
		return flashError(c, api.UserMessage(err), constants.PackagesRoute+"/edit/"+id)
	}
	return flashSuccess(c, "Package updated successfully", constants.PackagesRoute)
}

func HandlePackageDelete(c *fiber.Ctx) error {
	if err := apiClient.Delete(c.UserContext(), api.Packages, c.Params("id")); err != nil {
		return flashError(c, api.UserMessage(err), constants.PackagesRoute)
	}
	return flashSuccess(c, "Package deleted successfully", constants.PackagesRoute)
}

// HandlePackageStatusToggle flips active/inactive through the regular update
// endpoint; the backend has no dedicated status route.
func HandlePackageStatusToggle(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := apiClient.Get(c.UserContext(), api.Packages, id)
	if err != nil {
		return flashError(c, api.UserMessage(err), constants.PackagesRoute)
	}
	pkg, ok := listing.DecodeOne[models.Package](body, "data", "package")
	if !ok || pkg.ID == "" {
		return flashError(c, "Package not found", constants.PackagesRoute)
	}

	payload := fiber.Map{"status": toggledStatus(pkg.Status)}
	if err := apiClient.Update(c.UserContext(), api.Packages, id, payload); err != nil {
		return flashError(c, api.UserMessage(err), constants.PackagesRoute)
	}
	return flashSuccess(c, "Package status updated", constants.PackagesRoute)
}

// HandlePackageExport downloads the filtered collection (all matching rows,
// not just the visible page) as a spreadsheet.
func HandlePackageExport(c *fiber.Ctx) error {
	st := screenState(c, packageStateKey)
	filtered := packagePipeline.Filter(cachedList[models.Package](c, api.Packages, packageCacheKey), st)

	cols := []export.Column[models.Package]{
		{Header: "Name", Value: func(p models.Package) string { return p.Name }},
		{Header: "Video Limit", Value: func(p models.Package) string { return p.VideoLimitLabel() }},
		{Header: "Position", Value: func(p models.Package) string { return strconv.Itoa(p.Position) }},
		{Header: "Status", Value: func(p models.Package) string { return p.Status }},
		{Header: "Created At", Value: func(p models.Package) string { return p.CreatedAt.Display() }},
	}
	return sendSheet(c, "Packages", "packages", cols, filtered, constants.PackagesRoute)
}

func packageFormFromRequest(c *fiber.Ctx) forms.PackageForm {
	return forms.PackageForm{
		Name:       strings.TrimSpace(c.FormValue("name")),
		VideoLimit: formOptionalInt(c, "video_limit"),
		Position:   formInt(c, "position"),
		Status:     c.FormValue("status"),
		Line1:      strings.TrimSpace(c.FormValue("line1")),
		Line2:      strings.TrimSpace(c.FormValue("line2")),
		Line3:      strings.TrimSpace(c.FormValue("line3")),
		Line4:      strings.TrimSpace(c.FormValue("line4")),
		Line5:      strings.TrimSpace(c.FormValue("line5")),
	}
}

func packagePayload(form forms.PackageForm) fiber.Map {
	return fiber.Map{
		"name":        form.Name,
		"video_limit": form.VideoLimit,
		"position":    form.Position,
		"status":      form.Status,
		"package_info": fiber.Map{
			"line1": form.Line1,
			"line2": form.Line2,
			"line3": form.Line3,
			"line4": form.Line4,
			"line5": form.Line5,
		},
	}
}
