package middleware

import (
	"portfolio-blog/internal/cache"
	"portfolio-blog/internal/database"
	"portfolio-blog/internal/model"
	"portfolio-blog/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "currentUser"

// LoadUser 每個請求解析一次 session cookie 並將結果放入 context
// 解析失敗一律降級為匿名，不會中斷請求
func LoadUser(db database.DB, rdb cache.Cache, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(service.SessionCookieName)
			if err == nil && cookie.Value != "" {
				if user := service.ResolveSession(c.Request().Context(), db, rdb, secret, cookie.Value); user != nil {
					c.Set(ContextUserKey, user)
				}
			}
			return next(c)
		}
	}
}

// CurrentUser 回傳目前身分，匿名時為 nil
// handler 一律透過這裡取身分，不自行讀 cookie
func CurrentUser(c echo.Context) *model.User {
	user, ok := c.Get(ContextUserKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}
