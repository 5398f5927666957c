package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/babicastilho/todo-list-api/internal/adapters/http"
	"github.com/babicastilho/todo-list-api/internal/application/services"
)

// authMiddleware verifies the bearer credential before any business logic
// runs. A missing header and a failed verification are treated identically.
func (s *Server) authMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, httpHandlers.ErrorResponse{Message: "authentication required"})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return c.JSON(http.StatusUnauthorized, httpHandlers.ErrorResponse{Message: "authentication required"})
			}

			ownerID, err := authService.VerifyToken(tokenString)
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error": err.Error(),
				})
				return c.JSON(http.StatusUnauthorized, httpHandlers.ErrorResponse{Message: "authentication required"})
			}

			c.Set("owner", ownerID)

			return next(c)
		}
	}
}
