package studentRoutes

import (
	studentControllers "coursereg/controllers/student"
	"coursereg/middleware"
	"coursereg/models"
	studentValidators "coursereg/validators/student"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/api/student", middleware.Protected(models.RoleStudent))

	studentGroup.Get("/enrolled-courses", studentControllers.GetEnrolledCourses)
	studentGroup.Post("/register-course", studentValidators.CourseCode(), studentControllers.RegisterCourse)
	studentGroup.Delete("/unenroll-course", studentValidators.CourseCode(), studentControllers.UnenrollCourse)
	studentGroup.Get("/notifications", studentControllers.GetNotifications)
	studentGroup.Post("/submit-message", studentValidators.SubmitMessage(), studentControllers.SubmitMessage)
}
