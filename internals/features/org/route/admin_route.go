// file: internals/features/org/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgctl "dutychart_backend/internals/features/org/controller"
)

// OrgAdminRoutes registers full CRUD for the org hierarchy.
func OrgAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	dir := orgctl.NewDirectorateController(db, v)
	grpDir := admin.Group("/directorates")
	grpDir.Get("/", dir.List)
	grpDir.Get("/:id", dir.GetByID)
	grpDir.Post("/", dir.Create)
	grpDir.Put("/:id", dir.Update)
	grpDir.Delete("/:id", dir.Delete)

	dep := orgctl.NewDepartmentController(db, v)
	grpDep := admin.Group("/departments")
	grpDep.Get("/", dep.List)
	grpDep.Get("/:id", dep.GetByID)
	grpDep.Post("/", dep.Create)
	grpDep.Put("/:id", dep.Update)
	grpDep.Delete("/:id", dep.Delete)

	off := orgctl.NewOfficeController(db, v)
	grpOff := admin.Group("/offices")
	grpOff.Get("/", off.List)
	grpOff.Get("/:id", off.GetByID)
	grpOff.Post("/", off.Create)
	grpOff.Put("/:id", off.Update)
	grpOff.Delete("/:id", off.Delete)
}
