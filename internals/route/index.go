// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	authMw "tutorku_backend/internals/middlewares/auth"
	routeDetails "tutorku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE & AUTH =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT wajib
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMw.AuthMiddleware())

	// ADMIN → JWT + role admin
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Tutor routes...")
	routeDetails.TutorPublicRoutes(public, db)
	routeDetails.TutorUserRoutes(private, db)
	routeDetails.TutorAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Student routes...")
	routeDetails.StudentUserRoutes(private, db)
	routeDetails.StudentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Contact routes...")
	routeDetails.ContactPublicRoutes(public, db)
	routeDetails.ContactAdminRoutes(admin, db)
}
