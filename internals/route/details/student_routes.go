package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentRoute "tutorku_backend/internals/features/students/requests/route"
)

func StudentUserRoutes(userRoute fiber.Router, db *gorm.DB) {
	studentRoute.StudentUserRoutes(userRoute, db)
}

func StudentAdminRoutes(adminRoute fiber.Router, db *gorm.DB) {
	studentRoute.StudentAdminRoutes(adminRoute, db)
}
