// file: internals/features/contact/inquiries/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inquiryCtl "tutorku_backend/internals/features/contact/inquiries/controller"
)

// Mounted di group /api/a
func InquiryAdminRoutes(adminRoute fiber.Router, db *gorm.DB) {
	ic := inquiryCtl.NewTutorInquiryController(db)

	adminRoute.Get("/contact/inquiries", ic.AdminList) // GET /api/a/contact/inquiries?kind=
}
