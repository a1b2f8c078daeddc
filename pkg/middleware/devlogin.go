package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevLogin resolves a user id from the GARDEN_UID cookie, falling back to a
// query param or a fixed development id. Use StrictAuth in front of anything
// real.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("GARDEN_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: "GARDEN_UID", Value: q, Path: "/"})
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
					c.SetCookie(&http.Cookie{Name: "GARDEN_UID", Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
