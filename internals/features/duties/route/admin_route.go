// file: internals/features/duties/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dutyctl "dutychart_backend/internals/features/duties/controller"
)

// DutiesAdminRoutes registers duty chart, duty and rotation endpoints.
func DutiesAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	charts := dutyctl.NewDutyChartController(db, v)
	grpCharts := admin.Group("/duty-charts")
	grpCharts.Get("/", charts.List)
	grpCharts.Get("/:id", charts.GetByID)
	grpCharts.Post("/", charts.Create)
	grpCharts.Put("/:id", charts.Update)
	grpCharts.Delete("/:id", charts.Delete)

	duties := dutyctl.NewDutyController(db, v)
	grpDuties := admin.Group("/duties")
	grpDuties.Get("/", duties.List)
	grpDuties.Get("/:id", duties.GetByID)
	grpDuties.Post("/", duties.Create)
	grpDuties.Put("/:id", duties.Update)
	grpDuties.Delete("/:id", duties.Delete)
	grpDuties.Post("/bulk-upsert", duties.BulkUpsert)
	grpDuties.Post("/generate-rotation", duties.GenerateRotation)

	templates := dutyctl.NewRotationTemplateController(db, v)
	grpTpl := admin.Group("/rotation-templates")
	grpTpl.Get("/", templates.List)
	grpTpl.Post("/", templates.Create)
	grpTpl.Delete("/:id", templates.Delete)
}
