// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"time"

	"portfolio-blog/internal/cache"
	"portfolio-blog/internal/database"
	"portfolio-blog/internal/flash"
	"portfolio-blog/internal/metrics"
	"portfolio-blog/internal/service"
	"portfolio-blog/internal/store"
	"portfolio-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// LoginRequest 登入表單欄位
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// dummyHash 未知 email 時仍比對一次，讓兩種失敗路徑花費相同的 bcrypt 成本
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// LoginFormHandler 顯示登入表單
func LoginFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "login.html", view.AuthPage{Page: view.NewPage(c)})
	}
}

// LoginHandler 驗證帳密並建立 session
// 未知 email 與密碼錯誤各有獨立的提示訊息，皆導回登入頁
func LoginHandler(db database.DB, rdb cache.Cache, secret string, sessionTTL time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.Render(http.StatusBadRequest, "login.html", view.AuthPage{
				Page:  view.NewPage(c),
				Error: "invalid form data",
			})
		}
		if err := c.Validate(&req); err != nil {
			return c.Render(http.StatusBadRequest, "login.html", view.AuthPage{
				Page:  view.NewPage(c),
				Email: req.Email,
				Error: "Please fill in both email and password.",
			})
		}

		ctx := c.Request().Context()

		user, err := store.GetUserByEmail(ctx, db, req.Email)
		if err != nil {
			service.ComparePassword(dummyHash, req.Password)
			metrics.ObserveLogin("unknown_email")
			flash.Set(c, "That email does not exist, please try again.")
			return c.Redirect(http.StatusFound, "/login")
		}

		if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
			metrics.ObserveLogin("bad_password")
			flash.Set(c, "Password incorrect, please try again.")
			return c.Redirect(http.StatusFound, "/login")
		}

		cookieValue, err := service.IssueSession(ctx, rdb, secret, user.ID, sessionTTL)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create session")
		}
		setSessionCookie(c, cookieValue, sessionTTL)
		metrics.ObserveLogin("success")

		return c.Redirect(http.StatusFound, "/")
	}
}
