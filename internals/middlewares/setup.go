package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global berurutan
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
