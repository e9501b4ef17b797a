// File: internal/flash/flash.go
// 一次性提示訊息：寫入 cookie，下一次渲染讀出後即清除。
// 匿名訪客沒有 session 紀錄，因此不走 Redis 而用 cookie 承載。
package flash

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

const cookieName = "pb_flash"

// Set 設定下一頁要顯示的提示訊息
func Set(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop 取出並清除提示訊息，無訊息時回傳空字串
func Pop(c echo.Context) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		message = ""
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return message
}
