package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	api.Get("/profile", handler.AuthRequired, handler.GetProfile)
	api.Get("/achievements", handler.AuthRequired, handler.ListAchievements)
	api.Post("/settings/sync-key", handler.AuthRequired, handler.RegenerateSyncKey)

	plans := api.Group("/plans", handler.AuthRequired)
	plans.Get("/", handler.ListPlans)
	plans.Post("/", handler.CreatePlan)
	plans.Get("/:id", handler.GetPlan)
	plans.Patch("/:id/status", handler.UpdatePlanStatus)
	plans.Delete("/:id", handler.DeletePlan)
	plans.Get("/:id/stats", handler.GetPlanStats)
	plans.Get("/:id/checkins", handler.ListPlanCheckIns)

	checkins := api.Group("/checkins", handler.AuthRequired)
	checkins.Post("/", handler.CreateCheckIn)
	checkins.Get("/month", handler.ListMonthCheckIns)

	templates := api.Group("/templates")
	templates.Get("/", handler.AuthRequired, handler.ListTemplates)
	templates.Post("/sync", handler.SyncTemplates)
	templates.Post("/:id/adopt", handler.AuthRequired, handler.AdoptTemplate)

	api.Post("/uploads", handler.AuthRequired, handler.UploadImage)
}
