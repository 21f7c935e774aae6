package authRoutes

import (
	authControllers "coursereg/controllers/auth"
	"coursereg/middleware"
	authValidators "coursereg/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", authControllers.Logout)
	authGroup.Get("/me", middleware.Protected(), authControllers.Me)
	authGroup.Put("/profile", middleware.Protected(), authValidators.UpdateProfile(), authControllers.UpdateProfile)
}
