// file: internals/features/tutors/applications/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tutorCtl "tutorku_backend/internals/features/tutors/applications/controller"
)

// Mounted di group /api/public
func TutorPublicRoutes(publicRoute fiber.Router, db *gorm.DB) {
	tc := tutorCtl.NewTutorApplicationController(db)

	tutors := publicRoute.Group("/tutors")
	tutors.Get("/", tc.List)       // GET /api/public/tutors
	tutors.Get("/:id", tc.GetByID) // GET /api/public/tutors/:id
}
