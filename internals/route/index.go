// file: internals/route/index.go
package route

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	docRoute "dutychart_backend/internals/features/documents/route"
	dutiesRoute "dutychart_backend/internals/features/duties/route"
	orgRoute "dutychart_backend/internals/features/org/route"
	rosterRoute "dutychart_backend/internals/features/roster/route"
	"dutychart_backend/internals/middlewares/auth"
)

// SetupRoutes wires the public surface and the authenticated admin API.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"time":   time.Now().Format(time.RFC3339),
			})
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Read-only lookups, no token required
	public := app.Group("/api/v1/public")
	rosterRoute.SchedulePublicRoutes(public, db)

	// Everything that mutates sits behind the bearer token
	admin := app.Group("/api/v1/admin", auth.AuthMiddleware())
	orgRoute.OrgAdminRoutes(admin, db, v)
	dutiesRoute.DutiesAdminRoutes(admin, db, v)
	rosterRoute.RosterAdminRoutes(admin, db)
	docRoute.DocumentsAdminRoutes(admin, db)
}
