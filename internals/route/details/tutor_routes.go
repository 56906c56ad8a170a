package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tutorRoute "tutorku_backend/internals/features/tutors/applications/route"
)

func TutorPublicRoutes(publicRoute fiber.Router, db *gorm.DB) {
	tutorRoute.TutorPublicRoutes(publicRoute, db)
}

func TutorUserRoutes(userRoute fiber.Router, db *gorm.DB) {
	tutorRoute.TutorUserRoutes(userRoute, db)
}

func TutorAdminRoutes(adminRoute fiber.Router, db *gorm.DB) {
	tutorRoute.TutorAdminRoutes(adminRoute, db)
}
