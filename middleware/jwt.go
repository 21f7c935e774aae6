package middleware

import (
	"coursereg/config"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

// SessionLifetime bounds how long an issued token stays valid. The role claim
// is a point-in-time snapshot: a role change only takes effect once the user
// authenticates again.
const SessionLifetime = 7 * 24 * time.Hour

// GenerateJWT generates a signed session token for the user
func GenerateJWT(userID uint, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(SessionLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// SetSessionCookie attaches the session token to the response
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(SessionLifetime),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   config.AppConfig.Env == "production",
		Path:     "/",
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   config.AppConfig.Env == "production",
		Path:     "/",
	})
}

// Protected gates a route behind a valid session cookie. Every verification
// failure collapses to the same 401 so nothing about the token leaks back.
// When roles are given, the session's role must be one of them, otherwise 403.
func Protected(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(config.AppConfig.JWTKey), nil
		})
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["id"] == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
		}

		userID, ok := claims["id"].(float64) // numeric claims decode as float64
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
		}
		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)

		if len(roles) > 0 && !roleAllowed(role, roles) {
			return JsonResponse(c, fiber.StatusForbidden, false, "Forbidden", nil)
		}

		c.Locals("userId", uint(userID))
		c.Locals("role", role)
		c.Locals("email", email)

		return c.Next()
	}
}

// roleAllowed checks flat role membership. There is no role hierarchy.
func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
