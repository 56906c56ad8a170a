// file: internals/features/students/requests/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "tutorku_backend/internals/features/students/requests/controller"
)

// Mounted di group /api/a
func StudentAdminRoutes(adminRoute fiber.Router, db *gorm.DB) {
	sc := studentCtl.NewStudentRequestController(db)

	requests := adminRoute.Group("/students/requests")
	requests.Get("/", sc.AdminList)               // GET   /api/a/students/requests?status=
	requests.Patch("/:id/status", sc.PatchStatus) // PATCH /api/a/students/requests/:id/status
}
