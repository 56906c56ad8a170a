// file: internals/features/students/requests/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "tutorku_backend/internals/features/students/requests/controller"
)

// Mounted di group /api/u
func StudentUserRoutes(userRoute fiber.Router, db *gorm.DB) {
	sc := studentCtl.NewStudentRequestController(db)

	students := userRoute.Group("/students")
	students.Post("/request", sc.Submit)                 // POST  /api/u/students/request
	students.Get("/my/requests", sc.MyList)              // GET   /api/u/students/my/requests
	students.Get("/my/requests/:id", sc.MyGet)           // GET   /api/u/students/my/requests/:id
	students.Patch("/my/requests/:id", sc.UpdateMine)    // PATCH /api/u/students/my/requests/:id
	students.Get("/my/requests/:id/matches", sc.Matches) // GET   /api/u/students/my/requests/:id/matches
}
