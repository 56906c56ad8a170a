package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inquiryRoute "tutorku_backend/internals/features/contact/inquiries/route"
)

func ContactPublicRoutes(publicRoute fiber.Router, db *gorm.DB) {
	inquiryRoute.InquiryPublicRoutes(publicRoute, db)
}

func ContactAdminRoutes(adminRoute fiber.Router, db *gorm.DB) {
	inquiryRoute.InquiryAdminRoutes(adminRoute, db)
}
