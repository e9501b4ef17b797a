// File: internal/handler/projects/list.go
package projects

import (
	"net/http"

	"portfolio-blog/internal/database"
	"portfolio-blog/internal/store"
	"portfolio-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// ListHandler 首頁文章列表，依 id 排序
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projects, err := store.ListProjects(c.Request().Context(), db)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load projects")
		}
		return c.Render(http.StatusOK, "index.html", view.IndexPage{
			Page:     view.NewPage(c),
			Projects: projects,
		})
	}
}
