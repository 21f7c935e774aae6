package courseRoutes

import (
	courseControllers "coursereg/controllers/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog routes
func SetupCourseRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Get("/courses", courseControllers.GetCourses)
	apiGroup.Get("/courses/term/:term", courseControllers.GetCoursesByTerm)
	apiGroup.Get("/courses/:code", courseControllers.GetCourseByCode)
	apiGroup.Get("/programs", courseControllers.GetPrograms)
}
