package adminValidator

import (
	"coursereg/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Name          string `json:"name"`
	Code          string `json:"code"`
	Term          string `json:"term"`
	Instructor    string `json:"instructor"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Description   string `json:"desc"`
	Status        string `json:"status"`
	Department    string `json:"department"`
	Credits       int    `json:"credits"`
	Prerequisites string `json:"prerequisites"`
}

type UpdateCourseRequest struct {
	Name          string `json:"name"`
	Term          string `json:"term"`
	Instructor    string `json:"instructor"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Description   string `json:"desc"`
	Status        string `json:"status"`
	Department    string `json:"department"`
	Credits       int    `json:"credits"`
	Prerequisites string `json:"prerequisites"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Code = strings.TrimSpace(reqData.Code)
		if reqData.Code == "" {
			errors["code"] = "Course code is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Course name is required!"
		}
		if strings.TrimSpace(reqData.Term) == "" {
			errors["term"] = "Term is required!"
		}
		if reqData.Status != "" && reqData.Status != "Active" && reqData.Status != "Inactive" {
			errors["status"] = "Status must be Active or Inactive!"
		}
		if reqData.Credits < 0 {
			errors["credits"] = "Credits cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.TrimSpace(c.Params("code"))
		if code == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course code is required!", nil)
		}

		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Status != "" && reqData.Status != "Active" && reqData.Status != "Inactive" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be Active or Inactive!", nil)
		}

		c.Locals("courseCode", code)
		c.Locals("validatedUpdateCourse", reqData)
		return c.Next()
	}
}
