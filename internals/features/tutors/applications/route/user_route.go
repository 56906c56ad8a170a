// file: internals/features/tutors/applications/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tutorCtl "tutorku_backend/internals/features/tutors/applications/controller"
)

// Mounted di group /api/u
func TutorUserRoutes(userRoute fiber.Router, db *gorm.DB) {
	tc := tutorCtl.NewTutorApplicationController(db)

	tutors := userRoute.Group("/tutors")
	tutors.Post("/apply", tc.Apply)                // POST  /api/u/tutors/apply
	tutors.Get("/my/application", tc.GetMine)      // GET   /api/u/tutors/my/application
	tutors.Patch("/my/application", tc.UpdateMine) // PATCH /api/u/tutors/my/application
}
