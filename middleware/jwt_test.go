package middleware

import (
	"coursereg/config"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGuard(t *testing.T, roles ...string) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/protected", Protected(roles...), func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
			"email":  c.Locals("email"),
		})
	})
	return app
}

func request(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func signedToken(t *testing.T, key string, issued, expires time.Time, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":    float64(7),
		"email": "a@x.com",
		"role":  role,
		"iat":   issued.Unix(),
		"exp":   expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestProtectedMissingCookie(t *testing.T) {
	app := setupGuard(t)
	resp := request(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedMalformedToken(t *testing.T) {
	app := setupGuard(t)
	resp := request(t, app, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedWrongKey(t *testing.T) {
	app := setupGuard(t)
	token := signedToken(t, "other-secret", time.Now(), time.Now().Add(time.Hour), "student")
	resp := request(t, app, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedExpiryBoundary(t *testing.T) {
	app := setupGuard(t)

	// Just past the 7-day lifetime
	issued := time.Now().Add(-SessionLifetime - time.Minute)
	expired := signedToken(t, "test-secret", issued, issued.Add(SessionLifetime), "student")
	resp := request(t, app, expired)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Just inside it
	issued = time.Now().Add(-SessionLifetime + time.Minute)
	inside := signedToken(t, "test-secret", issued, issued.Add(SessionLifetime), "student")
	resp = request(t, app, inside)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoleMismatch(t *testing.T) {
	app := setupGuard(t, "admin")
	token := signedToken(t, "test-secret", time.Now(), time.Now().Add(time.Hour), "student")
	resp := request(t, app, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProtectedRoleMatch(t *testing.T) {
	app := setupGuard(t, "admin")
	token := signedToken(t, "test-secret", time.Now(), time.Now().Add(time.Hour), "admin")
	resp := request(t, app, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenerateJWTLifetime(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	tokenString, err := GenerateJWT(7, "a@x.com", "student")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(SessionLifetime), exp, time.Minute)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "student", claims["role"])
	assert.Equal(t, float64(7), claims["id"])
}
