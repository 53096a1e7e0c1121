package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/streamvid/adminweb/app/controllers"
	"github.com/streamvid/adminweb/internal/pkg/constants"
)

func (h HttpRouter) registerScreenRoutes(app *fiber.App) {
	app.Get(constants.DashboardRoute, controllers.HandleDashboard)

	// Package management
	packages := app.Group(constants.PackagesRoute)
	packages.Get("/", controllers.HandlePackages)
	packages.Post("/search", controllers.HandlePackageSearch)
	packages.Post("/reset", controllers.HandlePackageReset)
	packages.Get("/page/:page", controllers.HandlePackagePage)
	packages.Post("/page-size", controllers.HandlePackagePageSize)
	packages.Get("/export", controllers.HandlePackageExport)
	packages.Get("/create", controllers.HandlePackageCreate)
	packages.Post("/store", controllers.HandlePackageStore)
	packages.Get("/edit/:id", controllers.HandlePackageEdit)
	packages.Post("/update/:id", controllers.HandlePackageUpdate)
	packages.Post("/delete/:id", controllers.HandlePackageDelete)
	packages.Post("/status/:id", controllers.HandlePackageStatusToggle)

	// Membership plan management
	plans := app.Group(constants.PlansRoute)
	plans.Get("/", controllers.HandlePlans)
	plans.Post("/search", controllers.HandlePlanSearch)
	plans.Post("/reset", controllers.HandlePlanReset)
	plans.Get("/page/:page", controllers.HandlePlanPage)
	plans.Post("/page-size", controllers.HandlePlanPageSize)
	plans.Get("/export", controllers.HandlePlanExport)
	plans.Get("/create", controllers.HandlePlanCreate)
	plans.Post("/store", controllers.HandlePlanStore)
	plans.Get("/edit/:id", controllers.HandlePlanEdit)
	plans.Post("/update/:id", controllers.HandlePlanUpdate)
	plans.Post("/delete/:id", controllers.HandlePlanDelete)
	plans.Post("/status/:id", controllers.HandlePlanStatusToggle)

	// Subscription management
	subscriptions := app.Group(constants.SubscriptionsRoute)
	subscriptions.Get("/", controllers.HandleSubscriptions)
	subscriptions.Post("/search", controllers.HandleSubscriptionSearch)
	subscriptions.Post("/reset", controllers.HandleSubscriptionReset)
	subscriptions.Get("/page/:page", controllers.HandleSubscriptionPage)
	subscriptions.Post("/page-size", controllers.HandleSubscriptionPageSize)
	subscriptions.Get("/export", controllers.HandleSubscriptionExport)
	subscriptions.Get("/create", controllers.HandleSubscriptionCreate)
	subscriptions.Get("/plan-options/:packageId", controllers.HandleSubscriptionPlanOptions)
	subscriptions.Post("/store", controllers.HandleSubscriptionStore)
	subscriptions.Get("/edit/:id", controllers.HandleSubscriptionEdit)
	subscriptions.Post("/update/:id", controllers.HandleSubscriptionUpdate)
	subscriptions.Post("/delete/:id", controllers.HandleSubscriptionDelete)

	// Video management
	videos := app.Group(constants.VideosRoute)
	videos.Get("/", controllers.HandleVideos)
	videos.Post("/search", controllers.HandleVideoSearch)
	videos.Post("/reset", controllers.HandleVideoReset)
	videos.Get("/page/:page", controllers.HandleVideoPage)
	videos.Post("/page-size", controllers.HandleVideoPageSize)
	videos.Get("/export", controllers.HandleVideoExport)
	videos.Get("/create", controllers.HandleVideoCreate)
	videos.Post("/store", controllers.HandleVideoStore)
	videos.Get("/edit/:id", controllers.HandleVideoEdit)
	videos.Post("/update/:id", controllers.HandleVideoUpdate)
	videos.Post("/delete/:id", controllers.HandleVideoDelete)
	videos.Post("/status/:id", controllers.HandleVideoStatusToggle)
}
