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
	videoCacheKey        = "videos.items"
	videoPackageCacheKey = "videos.packages"
	videoStateKey        = "videos.state"
)

func videoPipeline(packageNames map[string]string) listing.Pipeline[models.Video] {
	return listing.Pipeline[models.Video]{
		Fields: []listing.SearchField[models.Video]{
			{Name: "videoUrl", Value: func(v models.Video) string { return v.VideoURL }},
			{Name: "packageName", Value: func(v models.Video) string { return packageNames[v.PackageID] }},
		},
		Status:    func(v models.Video) string { return v.Status },
		CreatedAt: func(v models.Video) time.Time { return v.CreatedAt.Time },
	}
}

func HandleVideos(c *fiber.Ctx) error {
	st := listing.NewState()
	items := loadList[models.Video](c, api.Videos, videoCacheKey)
	packages := loadList[models.Package](c, api.Packages, videoPackageCacheKey)
	return renderVideoIndex(c, items, packages, st)
}

func renderVideoIndex(c *fiber.Ctx, items []models.Video, packages []models.Package, st listing.State) error {
	names := packageNameMap(packages)
	res := videoPipeline(names).Apply(items, st)
	st.Page = res.Page
	saveState(c, videoStateKey, st)

	return c.Render("videos/index", fiber.Map{
		"Title":        "Videos",
		"Base":         constants.VideosRoute,
		"Active":       "videos",
		"Flash":        flash.Get(c),
		"Meta":         viewmodel.NewListMeta(res, st),
		"Rows":         res.Rows,
		"PackageNames": names,
	})
}

func cachedVideoScreen(c *fiber.Ctx) ([]models.Video, []models.Package) {
	items := cachedList[models.Video](c, api.Videos, videoCacheKey)
	packages := cachedList[models.Package](c, api.Packages, videoPackageCacheKey)
	return items, packages
}

func HandleVideoSearch(c *fiber.Ctx) error {
	st := screenState(c, videoStateKey)
	st.Search = map[string]string{
		"videoUrl":    c.FormValue("videoUrl"),
		"packageName": c.FormValue("packageName"),
	}
	st.Status = c.FormValue("status", listing.StatusAll)
	st.Page = 1
	items, packages := cachedVideoScreen(c)
	return renderVideoIndex(c, items, packages, st)
}

func HandleVideoReset(c *fiber.Ctx) error {
	items, packages := cachedVideoScreen(c)
	return renderVideoIndex(c, items, packages, listing.NewState())
}

func HandleVideoPage(c *fiber.Ctx) error {
	st := screenState(c, videoStateKey)
	st.Page, _ = strconv.Atoi(c.Params("page"))
	items, packages := cachedVideoScreen(c)
	return renderVideoIndex(c, items, packages, st)
}

func HandleVideoPageSize(c *fiber.Ctx) error {
	st := screenState(c, videoStateKey)
	st.PageSize = formInt(c, "page_size")
	st.Page = 1
	items, packages := cachedVideoScreen(c)
	return renderVideoIndex(c, items, packages, st)
}

func HandleVideoCreate(c *fiber.Ctx) error {
	packages := cachedList[models.Package](c, api.Packages, videoPackageCacheKey)
	return c.Render("videos/add", fiber.Map{
		"Title":    "Add Video",
		"Active":   "videos",
		"Flash":    flash.Get(c),
		"Packages": activePackages(packages),
	})
}

func HandleVideoStore(c *fiber.Ctx) error {
	form := videoFormFromRequest(c)
	if msg := form.Validate(); msg != "" {
		return flashError(c, msg, constants.VideosRoute+"/create")
	}

	if err := apiClient.Create(c.UserContext(), api.Videos, videoPayload(form)); err != nil {
		return flashError(c, api.UserMessage(err), constants.VideosRoute+"/create")
	}
	return flashSuccess(c, "Video created successfully", constants.VideosRoute)
}

func HandleVideoEdit(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := apiClient.Get(c.UserContext(), api.Videos, id)
	if err != nil {
		return flashError(c, api.UserMessage(err), constants.VideosRoute)
	}
	video, ok := listing.DecodeOne[models.Video](body, "data", "video")
	if !ok || video.ID == "" {
		return flashError(c, "Video not found", constants.VideosRoute)
	}

	packages := cachedList[models.Package](c, api.Packages, videoPackageCacheKey)
	return c.Render("videos/edit", fiber.Map{
		"Title":    "Edit Video",
		"Active":   "videos",
		"Flash":    flash.Get(c),
		"Video":    video,
		"Packages": activePackages(packages),
	})
}

func HandleVideoUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	form := videoFormFromRequest(c)
	if msg := form.Validate(); msg != "" {
		return flashError(c, msg, constants.VideosRoute+"/edit/"+id)
	}

	if err := apiClient.Update(c.UserContext(), api.Videos, id, videoPayload(form)); err != nil {
		return flashError(c, api.UserMessage(err), constants.VideosRoute+"/edit/"+id)
	}
	return flashSuccess(c, "Video updated successfully", constants.VideosRoute)
}

func HandleVideoDelete(c *fiber.Ctx) error {
	if err := apiClient.Delete(c.UserContext(), api.Videos, c.Params("id")); err != nil {
		return flashError(c, api.UserMessage(err), constants.VideosRoute)
	}
	return flashSuccess(c, "Video deleted successfully", constants.VideosRoute)
}

func HandleVideoStatusToggle(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := apiClient.Get(c.UserContext(), api.Videos, id)
	if err != nil {
		return flashError(c, api.UserMessage(err), constants.VideosRoute)
	}
	video, ok := listing.DecodeOne[models.Video](body, "data", "video")
	if !ok || video.ID == "" {
		return flashError(c, "Video not found", constants.VideosRoute)
	}

	payload := fiber.Map{"status": toggledStatus(video.Status)}
	if err := apiClient.Update(c.UserContext(), api.Videos, id, payload); err != nil {
		return flashError(c, api.UserMessage(err), constants.VideosRoute)
	}
	return flashSuccess(c, "Video status updated", constants.VideosRoute)
}

func HandleVideoExport(c *fiber.Ctx) error {
	st := screenState(c, videoStateKey)
	items, packages := cachedVideoScreen(c)
	names := packageNameMap(packages)
	filtered := videoPipeline(names).Filter(items, st)

	cols := []export.Column[models.Video]{
		{Header: "Package", Value: func(v models.Video) string { return names[v.PackageID] }},
		{Header: "Video URL", Value: func(v models.Video) string { return v.VideoURL }},
		{Header: "Status", Value: func(v models.Video) string { return v.Status }},
		{Header: "Created At", Value: func(v models.Video) string { return v.CreatedAt.Display() }},
	}
	return sendSheet(c, "Videos", "videos", cols, filtered, constants.VideosRoute)
}

func videoFormFromRequest(c *fiber.Ctx) forms.VideoForm {
	return forms.VideoForm{
		PackageID: c.FormValue("package_id"),
		VideoURL:  c.FormValue("video_url"),
		Status:    c.FormValue("status"),
	}
}

func videoPayload(form forms.VideoForm) fiber.Map {
	return fiber.Map{
		"package_id": form.PackageID,
		"video_url":  form.VideoURL,
		"status":     form.Status,
	}
}
