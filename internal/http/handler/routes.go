package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nzwalks/internal/config"
	"nzwalks/internal/http/middleware"
	"nzwalks/internal/repository"
	"nzwalks/internal/service"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	DB      Pinger
	Regions repository.RegionRepository
	Walks   repository.TrailRepository
	Images  service.ImageService
	Auth    *middleware.Auth
	// Gatherer backs /metrics; nil leaves the endpoint unregistered.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches every HTTP route to app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.DB != nil {
		app.Get("/health", HealthCheck(d.DB))
	}
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	auth := d.Auth
	if auth == nil {
		auth = middleware.NewAuth(config.AuthConfig{})
	}
	read := auth.Require(middleware.RoleReader)
	write := auth.Require(middleware.RoleWriter)

	api := app.Group("/api")

	if d.Regions != nil {
		regions := api.Group("/regions")
		regions.Get("/", read, ListRegions(d.Regions))
		regions.Get("/:id", read, GetRegion(d.Regions))
		regions.Post("/", write, CreateRegion(d.Regions))
		regions.Put("/:id", write, UpdateRegion(d.Regions))
		regions.Delete("/:id", write, DeleteRegion(d.Regions))
	}

	if d.Walks != nil {
		walks := api.Group("/walks")
		walks.Get("/", read, ListWalks(d.Walks))
		walks.Get("/:id", read, GetWalk(d.Walks))
		walks.Post("/", write, CreateWalk(d.Walks))
		walks.Put("/:id", write, UpdateWalk(d.Walks))
		walks.Delete("/:id", write, DeleteWalk(d.Walks))
	}

	if d.Images != nil {
		images := api.Group("/images")
		images.Post("/upload", write, UploadImage(d.Images))
		images.Get("/:id", read, GetImage(d.Images))
		images.Get("/:id/content", read, DownloadImage(d.Images))
	}
}
