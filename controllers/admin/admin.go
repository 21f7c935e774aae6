package adminController

import (
	"coursereg/database"
	"coursereg/middleware"
	"coursereg/models"
	adminValidator "coursereg/validators/admin"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetStudents lists all users with the student role, hashes stripped by the
// model's json tags.
func GetStudents(c *fiber.Ctx) error {
	var students []models.User
	if err := database.Database.Db.Where("role = ?", models.RoleStudent).Order("id asc").Find(&students).Error; err != nil {
		log.Printf("Error fetching students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully.", students)
}

// CreateCourse adds a catalog entry and announces it on the notification feed.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCourse").(*adminValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Duplicate codes answer 400, which the admin console expects
	if err := db.Where("code = ?", reqData.Code).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course with this code already exists", nil)
	}

	course := models.Course{
		Code:          reqData.Code,
		Name:          reqData.Name,
		Term:          reqData.Term,
		Instructor:    reqData.Instructor,
		Start:         reqData.Start,
		End:           reqData.End,
		Description:   reqData.Description,
		Status:        reqData.Status,
		Department:    reqData.Department,
		Credits:       reqData.Credits,
		Prerequisites: reqData.Prerequisites,
	}
	if course.Status == "" {
		course.Status = models.CourseStatusActive
	}
	if course.Department == "" {
		course.Department = "Computer Science"
	}
	if course.Credits == 0 {
		course.Credits = 3
	}
	if course.Prerequisites == "" {
		course.Prerequisites = "None"
	}

	if err := db.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course with this code already exists", nil)
		}
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	// Announce on the pull-based notification feed
	notification := models.Notification{
		Icon:  "📚",
		Title: "New course available: " + course.Name,
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Error creating course notification: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

// UpdateCourse applies the fields present in the request.
func UpdateCourse(c *fiber.Ctx) error {
	code, _ := c.Locals("courseCode").(string)
	reqData, ok := c.Locals("validatedUpdateCourse").(*adminValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("code = ?", code).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if reqData.Name != "" {
		course.Name = reqData.Name
	}
	if reqData.Term != "" {
		course.Term = reqData.Term
	}
	if reqData.Instructor != "" {
		course.Instructor = reqData.Instructor
	}
	if reqData.Start != "" {
		course.Start = reqData.Start
	}
	if reqData.End != "" {
		course.End = reqData.End
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.Department != "" {
		course.Department = reqData.Department
	}
	if reqData.Credits != 0 {
		course.Credits = reqData.Credits
	}
	if reqData.Prerequisites != "" {
		course.Prerequisites = reqData.Prerequisites
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course %s: %v", code, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

// DeleteCourse removes a course and its dependent enrollments in one
// transaction, so no enrollment can point at a course that no longer exists.
func DeleteCourse(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course code is required!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("code = ?", code).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_code = ?", code).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %s: %v", code, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", course)
}

// GetMessages lists all contact messages.
func GetMessages(c *fiber.Ctx) error {
	var messages []models.Message
	if err := database.Database.Db.Order("created_at desc").Find(&messages).Error; err != nil {
		log.Printf("Error fetching messages: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not get messages", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully.", messages)
}
