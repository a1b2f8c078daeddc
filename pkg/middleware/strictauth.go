package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StrictAuth requires a user id from the X-Garden-Uid header or the
// GARDEN_UID cookie and returns 401 otherwise. When enabled=false it passes
// through so development setups can rely on DevLogin instead.
func StrictAuth(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-Garden-Uid")
			if uid == "" {
				if ck, err := c.Cookie("GARDEN_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
