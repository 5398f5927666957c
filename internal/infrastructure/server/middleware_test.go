package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/babicastilho/todo-list-api/internal/application/services"
	"github.com/babicastilho/todo-list-api/internal/infrastructure/config"
	"github.com/babicastilho/todo-list-api/internal/infrastructure/logger"
)

const testSecret = "test-secret-not-for-production"

func newAuthTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	s := &Server{logger: logger.NewNop()}
	authService := services.NewAuthService(nil, config.JWTConfig{
		Secret:    testSecret,
		ExpiresIn: time.Hour,
		Issuer:    "todo-list-api-test",
	}, logger.NewNop())

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		ownerID := c.Get("owner").(uuid.UUID)
		return c.String(http.StatusOK, ownerID.String())
	}, s.authMiddleware(authService))
	return e
}

func signTestToken(t *testing.T, secret string, userID string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   "ana@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return signed
}

func TestAuthMiddlewareRejections(t *testing.T) {
	e := newAuthTestEcho(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + signTestToken(t, "another-secret", uuid.New().String())},
		{"bad subject", "Bearer " + signTestToken(t, testSecret, "not-a-uuid")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthMiddlewarePassesOwnerThrough(t *testing.T) {
	e := newAuthTestEcho(t)
	ownerID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, ownerID.String()))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	if rec.Body.String() != ownerID.String() {
		t.Errorf("owner = %s, want %s", rec.Body.String(), ownerID)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	e := newAuthTestEcho(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
