package studentController

import (
	"coursereg/database"
	"coursereg/middleware"
	"coursereg/models"
	studentValidator "coursereg/validators/student"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DisplayStatusInProgress is what students see for an active enrollment. The
// stored status stays "enrolled"; the relabel happens only at the projection.
const DisplayStatusInProgress = "In Progress"

// enrollmentProjection is the student-facing view of an enrollment.
func enrollmentProjection(e *models.Enrollment) fiber.Map {
	return fiber.Map{
		"code":       e.CourseCode,
		"name":       e.CourseName,
		"instructor": e.Instructor,
		"term":       e.Term,
		"status":     DisplayStatusInProgress,
	}
}

// RegisterCourse enrolls the student in a course. The existing-enrollment
// lookup is only a pre-check for a clean error; two racing requests are
// decided by the unique index on (student_id, course_code), surfaced here as
// gorm.ErrDuplicatedKey.
func RegisterCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	courseCode, ok := c.Locals("validatedCourseCode").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course code is required", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("code = ?", courseCode).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	var existing models.Enrollment
	if err := db.Where("student_id = ? AND course_code = ?", userID, courseCode).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course", nil)
	}

	instructor := course.Instructor
	if instructor == "" {
		instructor = "TBD"
	}

	enrollment := models.Enrollment{
		StudentID:  userID,
		CourseCode: course.Code,
		CourseName: course.Name,
		Instructor: instructor,
		Term:       course.Term,
		Status:     models.EnrollmentStatusEnrolled,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course", nil)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register for course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully registered for course", enrollmentProjection(&enrollment))
}

// UnenrollCourse drops the student's enrollment. No side effects on the course.
func UnenrollCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	courseCode, ok := c.Locals("validatedCourseCode").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course code is required", nil)
	}

	result := database.Database.Db.Where("student_id = ? AND course_code = ?", userID, courseCode).Delete(&models.Enrollment{})
	if result.Error != nil {
		log.Printf("Error dropping course: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to drop course", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "You are not enrolled in this course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully dropped the course", fiber.Map{
		"courseCode": courseCode,
	})
}

// GetEnrolledCourses lists the student's enrollments.
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("student_id = ?", userID).Order("created_at asc").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not get your courses", nil)
	}

	courses := make([]fiber.Map, 0, len(enrollments))
	for i := range enrollments {
		courses = append(courses, enrollmentProjection(&enrollments[i]))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully.", courses)
}

// GetNotifications returns the latest announcements from the notification
// table, newest first.
func GetNotifications(c *fiber.Ctx) error {
	var notifications []models.Notification
	if err := database.Database.Db.Order("created_at desc").Limit(20).Find(&notifications).Error; err != nil {
		log.Printf("Error fetching notifications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully.", notifications)
}

// SubmitMessage stores a contact message for the admins.
func SubmitMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	reqData, ok := c.Locals("validatedMessage").(*studentValidator.SubmitMessageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	phone := reqData.Phone
	if phone == "" {
		phone = "Not provided"
	}

	message := models.Message{
		StudentID: userID,
		Reference: uuid.NewString(),
		FullName:  reqData.FullName,
		Email:     reqData.Email,
		Phone:     phone,
		Subject:   reqData.Subject,
		Body:      reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		log.Printf("Error saving message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully.", fiber.Map{
		"reference": message.Reference,
	})
}
