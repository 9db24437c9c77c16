package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userIDKey = "user_id"

// SessionMiddleware требует валидный Bearer-токен и кладет идентификатор
// пользователя в контекст запроса.
func SessionMiddleware(verifier *Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := userIDFromRequest(c, verifier)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or missing token"})
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// OptionalSessionMiddleware пропускает запрос в любом случае, но если
// валидный токен есть, пользователь оказывается в контексте. Нужен
// публичным маршрутам, которые шлют персональные уведомления.
func OptionalSessionMiddleware(verifier *Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, err := userIDFromRequest(c, verifier); err == nil {
				c.Set(userIDKey, userID)
			}
			return next(c)
		}
	}
}

func userIDFromRequest(c echo.Context, verifier *Verifier) (uuid.UUID, error) {
	header := c.Request().Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return uuid.Nil, ErrInvalidToken
	}

	claims, err := verifier.Parse(token)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.Subject)
}

// UserIDFromContext достает пользователя, положенного одним из middleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)
	return userID, ok
}
