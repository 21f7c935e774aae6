package studentValidator

import (
	"coursereg/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CourseCodeRequest struct {
	CourseCode string `json:"courseCode"`
}

type SubmitMessageRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// CourseCode validates the body of register-course and unenroll-course.
func CourseCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseCodeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.CourseCode = strings.TrimSpace(reqData.CourseCode)
		if reqData.CourseCode == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course code is required", nil)
		}

		c.Locals("validatedCourseCode", reqData.CourseCode)
		return c.Next()
	}
}

// SubmitMessage validator middleware
func SubmitMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitMessageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.FullName) == "" || strings.TrimSpace(reqData.Email) == "" ||
			strings.TrimSpace(reqData.Subject) == "" || strings.TrimSpace(reqData.Message) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please fill out all required fields", nil)
		}
		if err := validate.Var(reqData.Email, "email"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email address", nil)
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}
