package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"nzwalks/docs"
)

// RegisterDocs serves the Swagger UI and spec under /swagger. The spec leaves
// host and schemes empty, so the UI targets whichever host and scheme served it,
// including through a proxy.
func RegisterDocs(app *fiber.App) {
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.Schemes = nil
	app.Get("/swagger/*", swagger.HandlerDefault)
}
