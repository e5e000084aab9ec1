package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"vendio/internal/infrastructure/auth"
	"vendio/internal/usecase"
)

type AuthMiddleware struct {
	jwtClient *auth.JWTClient
	sessions  *usecase.SessionRegistry
}

func NewAuthMiddleware(jwtClient *auth.JWTClient, sessions *usecase.SessionRegistry) *AuthMiddleware {
	return &AuthMiddleware{
		jwtClient: jwtClient,
		sessions:  sessions,
	}
}

// Authenticate verifies the bearer token and requires a live session:
// logout invalidates tokens immediately even though they are stateless.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := m.jwtClient.VerifyToken(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		if _, ok := m.sessions.Get(claims.Subject); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Session has ended")
		}

		c.Set("uid", claims.Subject)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// VerifyQueryToken authenticates from a token query parameter; browsers
// cannot set headers on websocket dials.
func (m *AuthMiddleware) VerifyQueryToken(c echo.Context) (string, error) {
	token := c.QueryParam("token")
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Token is required")
	}

	claims, err := m.jwtClient.VerifyToken(token)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	if _, ok := m.sessions.Get(claims.Subject); !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Session has ended")
	}

	return claims.Subject, nil
}
