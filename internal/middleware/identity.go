package middleware

// identity.go reads back what JWTAuth stored in the Echo context.

import (
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/utils"
)

// CurrentUser returns the authenticated bearer, or false for anonymous
// requests.
func CurrentUser(c echo.Context) (utils.Identity, bool) {
    uid, ok := c.Get(ContextUserID).(uint64)
    if !ok || uid == 0 {
        return utils.Identity{}, false
    }
    role, _ := c.Get(ContextRole).(string)
    return utils.Identity{UserID: uid, Role: role}, true
}

// subject returns the user ID as a string for keys and logs, or "anon".
func subject(c echo.Context) string {
    if id, ok := CurrentUser(c); ok {
        return strconv.FormatUint(id.UserID, 10)
    }
    return "anon"
}
