// file: internals/features/tutors/applications/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tutorCtl "tutorku_backend/internals/features/tutors/applications/controller"
)

// Mounted di group /api/a
func TutorAdminRoutes(adminRoute fiber.Router, db *gorm.DB) {
	tc := tutorCtl.NewTutorApplicationController(db)

	apps := adminRoute.Group("/tutors/applications")
	apps.Get("/", tc.AdminList)            // GET   /api/a/tutors/applications?status=
	apps.Patch("/:id", tc.Review)          // PATCH /api/a/tutors/applications/:id
	apps.Patch("/:id/suspend", tc.Suspend) // PATCH /api/a/tutors/applications/:id/suspend
}
