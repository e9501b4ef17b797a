// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"portfolio-blog/internal/cache"
	"portfolio-blog/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 無條件清除 session 並導回文章列表
// 未登入者直接導回，不報錯
func LogoutHandler(rdb cache.Cache, secret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(service.SessionCookieName); err == nil && cookie.Value != "" {
			if err := service.RevokeSession(c.Request().Context(), rdb, secret, cookie.Value); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to revoke session")
			}
		}
		clearSessionCookie(c)
		return c.Redirect(http.StatusFound, "/")
	}
}
