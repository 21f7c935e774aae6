package studentController_test

import (
	"bytes"
	"coursereg/config"
	"coursereg/database"
	"coursereg/middleware"
	"coursereg/models"
	authRoutes "coursereg/routers/authRoutes"
	studentRoutes "coursereg/routers/studentRoutes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		Env:       "test",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.Program{},
		&models.Message{},
		&models.Notification{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func createUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  models.Credential(hashed),
		Role:      role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, code, name, term, instructor string) models.Course {
	t.Helper()

	course := models.Course{
		Code:       code,
		Name:       name,
		Term:       term,
		Instructor: instructor,
		Status:     models.CourseStatusActive,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func TestRegisterCourse(t *testing.T) {
	app := setupTest(t)
	_, cookie := createUser(t, "a@x.com", models.RoleStudent)
	createCourse(t, "CS101", "Programming", "Fall 2024", "Dr. Grace")

	resp := doJSON(t, app, http.MethodPost, "/api/student/register-course", map[string]string{
		"courseCode": "CS101",
	}, cookie)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var projection map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &projection))
	assert.Equal(t, "CS101", projection["code"])
	assert.Equal(t, "Programming", projection["name"])
	assert.Equal(t, "Dr. Grace", projection["instructor"])
	assert.Equal(t, "Fall 2024", projection["term"])
	assert.Equal(t, "In Progress", projection["status"])

	// Stored status stays "enrolled"; "In Progress" is presentation only
	var enrollment models.Enrollment
	require.NoError(t, database.Database.Db.Where("course_code = ?", "CS101").First(&enrollment).Error)
	assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)
}

func TestRegisterCourseInstructorDefaultsToTBD(t *testing.T) {
	app := setupTest(t)
	_, cookie := createUser(t, "a@x.com", models.RoleStudent)
	createCourse(t, "CS102", "Data Structures", "Fall 2024", "")

	resp := doJSON(t, app, http.MethodPost, "/api/student/register-course", map[string]string{
		"courseCode": "CS102",
	}, cookie)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var projection map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &projection))
	assert.Equal(t, "TBD", projection["instructor"])
}

func TestRegisterCourseErrors(t *testing.T) {
	app := setupTest(t)
	_, cookie := createUser(t, "a@x.com", models.RoleStudent)
	createCourse(t, "CS101", "Programming", "Fall 2024", "Dr. Grace")

	// Empty course code
	resp := doJSON(t, app, http.MethodPost, "/api/student/register-course", map[string]string{
		"courseCode": "  ",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown course
	resp = doJSON(t, app, http.MethodPost, "/api/student/register-course", map[string]string{
		"courseCode": "ZZ9",
	}, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Double enrollment
	resp = doJSON(t, app, http.MethodPost, "/api/student/register-course", map[string]string{
		"courseCode": "CS101",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/student/register-course", map[string]string{
		"courseCode": "CS101",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDuplicateEnrollmentBlockedByUniqueIndex(t *testing.T) {
	setupTest(t)
	user, _ := createUser(t, "a@x.com", models.RoleStudent)

	first := models.Enrollment{
		StudentID:  user.ID,
		CourseCode: "CS101",
		CourseName: "Programming",
		Instructor: "Dr. Grace",
		Term:       "Fall 2024",
		Status:     models.EnrollmentStatusEnrolled,
	}
	require.NoError(t, database.Database.Db.Create(&first).Error)

	// A request that loses the check-then-act race hits the constraint
	duplicate := models.Enrollment{
		StudentID:  user.ID,
		CourseCode: "CS101",
		CourseName: "Programming",
		Instructor: "Dr. Grace",
		Term:       "Fall 2024",
		Status:     models.EnrollmentStatusEnrolled,
	}
	err := database.Database.Db.Create(&duplicate).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUnenrollCourse(t *testing.T) {
	app := setupTest(t)
	_, cookie := createUser(t, "a@x.com", models.RoleStudent)
	other, _ := createUser(t, "b@x.com", models.RoleStudent)
	createCourse(t, "CS101", "Programming", "Fall 2024", "Dr. Grace")

	require.NoError(t, database.Database.Db.Create(&models.Enrollment{
		StudentID: other.ID, CourseCode: "CS101", CourseName: "Programming",
		Instructor: "Dr. Grace", Term: "Fall 2024", Status: models.EnrollmentStatusEnrolled,
	}).Error)

	resp := doJSON(t, app, http.MethodPost, "/api/student/register-course", map[string]string{
		"courseCode": "CS101",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/student/unenroll-course", map[string]string{
		"courseCode": "CS101",
	}, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Dropping again fails and leaves the ledger untouched
	resp = doJSON(t, app, http.MethodDelete, "/api/student/unenroll-course", map[string]string{
		"courseCode": "CS101",
	}, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&count)
	assert.Equal(t, int64(1), count, "the other student's enrollment must survive")
}

func TestReEnrollAfterDrop(t *testing.T) {
	app := setupTest(t)
	_, cookie := createUser(t, "a@x.com", models.RoleStudent)
	createCourse(t, "CS101", "Programming", "Fall 2024", "Dr. Grace")

	for _, step := range []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/api/student/register-course", http.StatusCreated},
		{http.MethodDelete, "/api/student/unenroll-course", http.StatusOK},
		{http.MethodPost, "/api/student/register-course", http.StatusCreated},
	} {
		resp := doJSON(t, app, step.method, step.path, map[string]string{"courseCode": "CS101"}, cookie)
		assert.Equal(t, step.want, resp.StatusCode)
	}
}

func TestGetEnrolledCourses(t *testing.T) {
	app := setupTest(t)
	_, cookie := createUser(t, "a@x.com", models.RoleStudent)
	createCourse(t, "CS101", "Programming", "Fall 2024", "Dr. Grace")
	createCourse(t, "CS201", "Algorithms", "Winter 2025", "Dr. Knuth")

	for _, code := range []string{"CS101", "CS201"} {
		resp := doJSON(t, app, http.MethodPost, "/api/student/register-course", map[string]string{
			"courseCode": code,
		}, cookie)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/student/enrolled-courses", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var courses []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 2)
	for _, course := range courses {
		assert.Equal(t, "In Progress", course["status"])
	}
}

func TestStudentRoutesGated(t *testing.T) {
	app := setupTest(t)
	_, adminCookie := createUser(t, "admin@x.com", models.RoleAdmin)

	// No session
	resp := doJSON(t, app, http.MethodGet, "/api/student/enrolled-courses", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Authenticated but wrong role
	resp = doJSON(t, app, http.MethodGet, "/api/student/enrolled-courses", nil, adminCookie)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSubmitMessage(t *testing.T) {
	app := setupTest(t)
	user, cookie := createUser(t, "a@x.com", models.RoleStudent)

	resp := doJSON(t, app, http.MethodPost, "/api/student/submit-message", map[string]string{
		"fullName": "Ada Lovelace",
		"email":    "a@x.com",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/student/submit-message", map[string]string{
		"fullName": "Ada Lovelace",
		"email":    "a@x.com",
		"subject":  "Question",
		"message":  "When does enrollment close?",
	}, cookie)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var message models.Message
	require.NoError(t, database.Database.Db.Where("student_id = ?", user.ID).First(&message).Error)
	assert.NotEmpty(t, message.Reference)
	assert.Equal(t, "Not provided", message.Phone)
}

func TestGetNotifications(t *testing.T) {
	app := setupTest(t)
	_, cookie := createUser(t, "a@x.com", models.RoleStudent)

	require.NoError(t, database.Database.Db.Create(&models.Notification{
		Icon: "📚", Title: "New course available: Programming",
	}).Error)

	resp := doJSON(t, app, http.MethodGet, "/api/student/notifications", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var notifications []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, "New course available: Programming", notifications[0]["title"])
}

// TestEnrollmentLifecycleScenario walks the full flow end to end: register,
// login with a different email case, enroll, re-enroll, drop, re-drop.
func TestEnrollmentLifecycleScenario(t *testing.T) {
	app := setupTest(t)
	createCourse(t, "CS101", "Programming", "Fall 2024", "Dr. Grace")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"firstName":  "Ada",
		"lastName":   "Lovelace",
		"email":      "a@x.com",
		"password":   "secret1",
		"birthday":   "2000-01-15",
		"department": "Computer Science",
		"country":    "Canada",
		"role":       "student",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "A@X.com", "password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			cookie = c.Value
		}
	}
	require.NotEmpty(t, cookie)

	steps := []struct {
		method string
		path   string
		code   string
		want   int
	}{
		{http.MethodPost, "/api/student/register-course", "ZZ9", http.StatusNotFound},
		{http.MethodPost, "/api/student/register-course", "CS101", http.StatusCreated},
		{http.MethodPost, "/api/student/register-course", "CS101", http.StatusBadRequest},
		{http.MethodDelete, "/api/student/unenroll-course", "CS101", http.StatusOK},
		{http.MethodDelete, "/api/student/unenroll-course", "CS101", http.StatusNotFound},
	}
	for _, step := range steps {
		resp := doJSON(t, app, step.method, step.path, map[string]string{"courseCode": step.code}, cookie)
		assert.Equalf(t, step.want, resp.StatusCode, "%s %s %s", step.method, step.path, step.code)
	}
}
