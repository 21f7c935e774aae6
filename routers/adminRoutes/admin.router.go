package adminRoutes

import (
	adminControllers "coursereg/controllers/admin"
	"coursereg/middleware"
	"coursereg/models"
	adminValidators "coursereg/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.Protected(models.RoleAdmin))

	adminGroup.Get("/students", adminControllers.GetStudents)
	adminGroup.Post("/courses", adminValidators.CreateCourse(), adminControllers.CreateCourse)
	adminGroup.Put("/courses/:code", adminValidators.UpdateCourse(), adminControllers.UpdateCourse)
	adminGroup.Delete("/courses/:code", adminControllers.DeleteCourse)
	adminGroup.Get("/messages", adminControllers.GetMessages)
}
