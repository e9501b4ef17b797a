// File: internal/handler/auth/register.go
package auth

import (
	"net/http"
	"time"

	"portfolio-blog/internal/cache"
	"portfolio-blog/internal/database"
	"portfolio-blog/internal/flash"
	"portfolio-blog/internal/model"
	"portfolio-blog/internal/service"
	"portfolio-blog/internal/store"
	"portfolio-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// RegisterRequest 註冊表單欄位
type RegisterRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Name     string `form:"name" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterFormHandler 顯示註冊表單
func RegisterFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "register.html", view.AuthPage{Page: view.NewPage(c)})
	}
}

// RegisterHandler 處理註冊：
// email 已存在時不建立新帳號，flash 後導向登入頁（冪等）；
// 成功則建立使用者並直接建立 session 登入
func RegisterHandler(db database.DB, rdb cache.Cache, secret string, sessionTTL time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.Render(http.StatusBadRequest, "register.html", view.AuthPage{
				Page:  view.NewPage(c),
				Error: "invalid form data",
			})
		}
		if err := c.Validate(&req); err != nil {
			return c.Render(http.StatusBadRequest, "register.html", view.AuthPage{
				Page:  view.NewPage(c),
				Email: req.Email,
				Name:  req.Name,
				Error: "Please fill in a valid email, name and password.",
			})
		}

		ctx := c.Request().Context()

		if _, err := store.GetUserByEmail(ctx, db, req.Email); err == nil {
			flash.Set(c, "You've already signed up with that email, log in instead!")
			return c.Redirect(http.StatusFound, "/login")
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to hash password")
		}

		user := &model.User{
			Email:        req.Email,
			Name:         req.Name,
			PasswordHash: hash,
		}
		created, err := store.CreateUser(ctx, db, user)
		if err != nil {
			// 重複 email 的併發窗口：與預查相同處理
			if store.IsUniqueViolation(err) {
				flash.Set(c, "You've already signed up with that email, log in instead!")
				return c.Redirect(http.StatusFound, "/login")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create user")
		}

		cookieValue, err := service.IssueSession(ctx, rdb, secret, created.ID, sessionTTL)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create session")
		}
		setSessionCookie(c, cookieValue, sessionTTL)

		return c.Redirect(http.StatusFound, "/")
	}
}

func setSessionCookie(c echo.Context, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     service.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     service.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
