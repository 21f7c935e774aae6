package authValidator

import (
	"coursereg/middleware"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BirthdayFormat is the wire format for birthday fields.
const BirthdayFormat = "2006-01-02"

type RegisterRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Birthday   string `json:"birthday"`
	Department string `json:"department"`
	Program    string `json:"program"`
	Country    string `json:"country"`
	Role       string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Program  string `json:"program"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Invalid email address"
		}
		if len(strings.TrimSpace(reqData.Password)) < 6 {
			errors["password"] = "Password must be at least 6 characters long"
		}
		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["firstName"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["lastName"] = "Last name is required!"
		}
		if reqData.Birthday != "" {
			if _, err := time.Parse(BirthdayFormat, reqData.Birthday); err != nil {
				errors["birthday"] = "Birthday must be in YYYY-MM-DD format!"
			}
		}
		if reqData.Role != "" && reqData.Role != "student" && reqData.Role != "admin" {
			errors["role"] = "Role must be student or admin!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Invalid email address"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Email) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required", nil)
		}
		if err := validate.Var(reqData.Email, "email"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email address", nil)
		}
		if reqData.Birthday != "" {
			if _, err := time.Parse(BirthdayFormat, reqData.Birthday); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Birthday must be in YYYY-MM-DD format!", nil)
			}
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
