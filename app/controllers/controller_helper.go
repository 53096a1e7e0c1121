package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/streamvid/adminweb/app/models"
	"github.com/streamvid/adminweb/internal/pkg/api"
	"github.com/streamvid/adminweb/internal/pkg/export"
	"github.com/streamvid/adminweb/internal/pkg/listing"
	"github.com/streamvid/adminweb/internal/pkg/session"
)

var apiClient *api.Client

// InitControllers wires the shared backend client. Called once by the router.
func InitControllers() {
	apiClient = api.NewClientFromEnv()
}

// SetApiClient swaps the backend client, used by tests.
func SetApiClient(c *api.Client) {
	apiClient = c
}

func flashSuccess(c *fiber.Ctx, message, redirect string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(redirect)
}

func flashError(c *fiber.Ctx, message, redirect string) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	return flash.WithError(c, fm).Redirect(redirect)
}

// flashErrorInline records an error flash without redirecting; the current
// handler keeps rendering (used when a list load fails and the screen shows
// an empty table instead of crashing).
func flashErrorInline(c *fiber.Ctx, message string) {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	flash.WithError(c, fm)
}

// loadList fetches one screen's full collection from the backend, normalizes
// it and caches it in the session. Fetch failures degrade to an empty cached
// list plus a flashed error.
func loadList[T any](c *fiber.Ctx, res api.Resource, cacheKey string) []T {
	body, err := apiClient.List(c.UserContext(), res)
	if err != nil {
		log.Errorf("list load failed for %s: %v", res.Path, err)
		flashErrorInline(c, api.UserMessage(err))
		_ = session.SetJSON(c, cacheKey, []T{})
		return nil
	}
	items := listing.DecodeList[T](body, res.PluralKey)
	_ = session.SetJSON(c, cacheKey, items)
	return items
}

// cachedList returns the session-cached collection for a screen; on a cache
// miss (expired session) it refetches.
func cachedList[T any](c *fiber.Ctx, res api.Resource, cacheKey string) []T {
	var items []T
	if session.GetJSON(c, cacheKey, &items) {
		return items
	}
	return loadList[T](c, res, cacheKey)
}

// screenState reads a screen's pipeline state from the session, falling back
// to the defaults (page 1, 25 rows, no filters).
func screenState(c *fiber.Ctx, stateKey string) listing.State {
	st := listing.NewState()
	session.GetJSON(c, stateKey, &st)
	return st
}

func saveState(c *fiber.Ctx, stateKey string, st listing.State) {
	_ = session.SetJSON(c, stateKey, st)
}

// sendSheet streams an xlsx file as a download.
func sendSheet[T any](c *fiber.Ctx, name, filePrefix string, cols []export.Column[T], rows []T, redirect string) error {
	f, err := export.Sheet(name, cols, rows)
	if err != nil {
		log.Errorf("export failed for %s: %v", name, err)
		return flashError(c, "Export failed. Please try again.", redirect)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Errorf("export write failed for %s: %v", name, err)
		return flashError(c, "Export failed. Please try again.", redirect)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.FileName(filePrefix)+`"`)
	return c.Send(buf.Bytes())
}

func packageNameMap(packages []models.Package) map[string]string {
	names := make(map[string]string, len(packages))
	for _, p := range packages {
		names[p.ID] = p.Name
	}
	return names
}

func formInt(c *fiber.Ctx, field string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(c.FormValue(field)))
	return n
}

func formFloat(c *fiber.Ctx, field string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(c.FormValue(field)), 64)
	return f
}

// formOptionalInt maps an empty input to nil (used for the nullable
// video_limit, where empty means unlimited).
func formOptionalInt(c *fiber.Ctx, field string) *int {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func toggledStatus(status string) string {
	if status == models.StatusActive {
		return models.StatusInactive
	}
	return models.StatusActive
}
