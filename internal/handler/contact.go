// File: internal/handler/contact.go
package handler

import (
	"net/http"

	"portfolio-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// ContactHandler 靜態聯絡頁
func ContactHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "contact.html", view.NewPage(c))
	}
}
