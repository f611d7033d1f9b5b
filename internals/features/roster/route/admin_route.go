// file: internals/features/roster/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rosterctl "dutychart_backend/internals/features/roster/controller"
	"dutychart_backend/internals/middlewares"
)

// RosterAdminRoutes registers roster assignment and schedule admin endpoints.
func RosterAdminRoutes(admin fiber.Router, db *gorm.DB) {
	roster := rosterctl.NewRosterController(db)
	grp := admin.Group("/roster")
	grp.Get("/", roster.List)
	grp.Get("/:id", roster.GetByID)
	grp.Post("/", roster.Upsert)
	grp.Delete("/:id", roster.Delete)
	grp.Post("/bulk-upload", middlewares.UploadRateLimiter(), roster.BulkUpload)

	schedules := rosterctl.NewScheduleController(db)
	grpSched := admin.Group("/schedules")
	grpSched.Get("/", schedules.List)
	grpSched.Get("/:id", schedules.GetByID)
	grpSched.Post("/sync-from-roster", schedules.SyncFromRoster)
}

// SchedulePublicRoutes exposes read-only schedule lookups without auth.
func SchedulePublicRoutes(public fiber.Router, db *gorm.DB) {
	schedules := rosterctl.NewScheduleController(db)
	grp := public.Group("/schedules")
	grp.Get("/", schedules.List)
	grp.Get("/:id", schedules.GetByID)
}
