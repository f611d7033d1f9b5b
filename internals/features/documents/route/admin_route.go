// file: internals/features/documents/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	docctl "dutychart_backend/internals/features/documents/controller"
	"dutychart_backend/internals/middlewares"
)

// DocumentsAdminRoutes registers document storage endpoints.
func DocumentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	docs := docctl.NewDocumentController(db)
	grp := admin.Group("/documents")
	grp.Get("/", docs.List)
	grp.Get("/:id", docs.GetByID)
	grp.Get("/:id/download", docs.Download)
	grp.Post("/bulk-upload", middlewares.UploadRateLimiter(), docs.BulkUpload)
	grp.Delete("/:id", docs.Delete)
}
