package authController

import (
	"coursereg/config"
	"coursereg/database"
	"coursereg/middleware"
	"coursereg/models"
	"coursereg/utils"
	authValidator "coursereg/validators/auth"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var studentPrograms = []string{
	"Diploma (2 Years)",
	"Post-Diploma (1 Year)",
	"Certificate (6 Months)",
	"Bachelor (4 Years)",
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// findUserByEmail looks up a user by case-insensitive email match. Emails are
// stored lowercased, but legacy rows imported from the old system are not
// guaranteed to be.
func findUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("LOWER(email) = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// publicProfile projects a user without the stored credential.
func publicProfile(user *models.User) fiber.Map {
	birthday := ""
	if !time.Time(user.Birthday).IsZero() {
		birthday = time.Time(user.Birthday).Format(authValidator.BirthdayFormat)
	}
	role := user.Role
	if role == "" {
		role = models.RoleStudent
	}
	return fiber.Map{
		"id":         user.ID,
		"firstName":  user.FirstName,
		"lastName":   user.LastName,
		"email":      user.Email,
		"phone":      user.Phone,
		"birthday":   birthday,
		"department": user.Department,
		"program":    user.Program,
		"country":    user.Country,
		"role":       role,
	}
}

// checkCredential verifies a password against the stored credential. Legacy
// plaintext credentials are compared directly and transparently re-hashed on
// the first successful login.
func checkCredential(db *gorm.DB, user *models.User, password string) bool {
	if user.Password.Hashed() {
		return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
	}

	if string(user.Password) != password {
		return false
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing upgraded credential: %v", err)
		return true // login still succeeds, upgrade retries next time
	}
	user.Password = models.Credential(hashed)
	if err := db.Save(user).Error; err != nil {
		log.Printf("Error persisting upgraded credential for user %d: %v", user.ID, err)
	}
	return true
}

// issueSession signs a token for the user and attaches the session cookie.
func issueSession(c *fiber.Ctx, user *models.User) error {
	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, token)
	return nil
}

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db
	email := normalizeEmail(reqData.Email)

	// Check if email already exists (case-insensitive)
	if _, err := findUserByEmail(db, email); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	role := reqData.Role
	if role == "" {
		role = models.RoleStudent
	}

	newUser := models.User{
		FirstName:  reqData.FirstName,
		LastName:   reqData.LastName,
		Email:      email,
		Password:   models.Credential(hashedPassword),
		Phone:      reqData.Phone,
		Department: reqData.Department,
		Program:    reqData.Program,
		Country:    reqData.Country,
		Role:       role,
	}
	if reqData.Birthday != "" {
		birthday, _ := time.Parse(authValidator.BirthdayFormat, reqData.Birthday)
		newUser.Birthday = datatypes.Date(birthday)
	}

	if err := db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	if err := issueSession(c, &newUser); err != nil {
		log.Printf("Error issuing session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	// Fire-and-forget sync to the campus directory, if configured
	go utils.SyncToDirectory(newUser)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", publicProfile(&newUser))
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// A missing user and a wrong password are deliberately indistinguishable,
	// and both answer 400 to match the behavior clients already depend on.
	user, err := findUserByEmail(db, reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid credentials", nil)
	}

	if !checkCredential(db, user, reqData.Password) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid credentials", nil)
	}

	if err := issueSession(c, user); err != nil {
		log.Printf("Error issuing session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", publicProfile(user))
}

func Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out", nil)
}

func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", publicProfile(&user))
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}
	role, _ := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedProfile").(*authValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if role == models.RoleStudent && reqData.Program != "" && !validProgram(reqData.Program) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please choose a valid program", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	email := normalizeEmail(reqData.Email)

	// Reject an email already used by someone else
	var other models.User
	if err := db.Where("LOWER(email) = ? AND id <> ?", email, userID).First(&other).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already in use by another user", nil)
	}

	user.Email = email
	user.Phone = reqData.Phone
	if reqData.Birthday != "" {
		birthday, _ := time.Parse(authValidator.BirthdayFormat, reqData.Birthday)
		user.Birthday = datatypes.Date(birthday)
	}
	switch {
	case reqData.Program != "":
		user.Program = reqData.Program
	case role == models.RoleStudent:
		user.Program = studentPrograms[0]
	default:
		user.Program = "N/A"
	}

	if err := db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already in use by another user", nil)
		}
		log.Printf("Error updating profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", publicProfile(&user))
}

func validProgram(program string) bool {
	for _, p := range studentPrograms {
		if program == p {
			return true
		}
	}
	return false
}
