// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tutorku_backend/internals/features/users/auth/controller"
	rateLimiter "tutorku_backend/internals/middlewares"
	authMw "tutorku_backend/internals/middlewares/auth"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔐 Protected
	protectedAuth := baseAuth.Group("", authMw.AuthMiddleware())
	protectedAuth.Get("/profile", authController.Me)
	protectedAuth.Patch("/profile", authController.UpdateProfile)
	protectedAuth.Get("/verify", authController.Verify)
	protectedAuth.Post("/logout", authController.Logout)
}
