package courseController

import (
	"coursereg/database"
	"coursereg/middleware"
	"coursereg/models"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetCourses returns the full course catalog.
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("code asc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetCoursesByTerm returns courses whose term contains the given fragment,
// case-insensitively.
func GetCoursesByTerm(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Params("term"))

	var courses []models.Course
	if err := database.Database.Db.Where("LOWER(term) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("code asc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses by term: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetCourseByCode returns a single course.
func GetCourseByCode(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))

	var course models.Course
	if err := database.Database.Db.Where("code = ?", code).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// GetPrograms returns the program catalog.
func GetPrograms(c *fiber.Ctx) error {
	var programs []models.Program
	if err := database.Database.Db.Order("program_id asc").Find(&programs).Error; err != nil {
		log.Printf("Error fetching programs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Programs fetched successfully.", programs)
}
