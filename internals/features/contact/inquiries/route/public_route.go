// file: internals/features/contact/inquiries/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inquiryCtl "tutorku_backend/internals/features/contact/inquiries/controller"
)

// Mounted di group /api/public
func InquiryPublicRoutes(publicRoute fiber.Router, db *gorm.DB) {
	ic := inquiryCtl.NewTutorInquiryController(db)

	contact := publicRoute.Group("/contact")
	contact.Post("/become-tutor", ic.SubmitBecomeTutor) // POST /api/public/contact/become-tutor
	contact.Post("/need-tutor", ic.SubmitNeedTutor)     // POST /api/public/contact/need-tutor
}
