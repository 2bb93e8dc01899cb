package middleware // middleware provides shared request processing for handlers

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/utils"
)

// Context keys set by JWTAuth.
const (
    ContextUserID = "user_id" // uint64
    ContextRole   = "role"    // string
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// signed with secret and stores the bearer's user ID and role in the
// context.  Requests without a valid token are answered with 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            raw, ok := BearerToken(c)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            id, err := utils.ParseAccessToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            c.Set(ContextUserID, id.UserID)
            c.Set(ContextRole, id.Role)
            return next(c)
        }
    }
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
func BearerToken(c echo.Context) (string, bool) {
    auth := c.Request().Header.Get(echo.HeaderAuthorization)
    if !strings.HasPrefix(auth, "Bearer ") {
        return "", false
    }
    raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
    return raw, raw != ""
}
