// File: internal/handler/projects/delete.go
package projects

import (
	"net/http"

	"portfolio-blog/internal/database"
	"portfolio-blog/internal/middleware"
	"portfolio-blog/internal/service"
	"portfolio-blog/internal/store"

	"github.com/labstack/echo/v4"
)

// DeleteProjectHandler 刪除文章（限管理員）
// 留言由資料庫 FK cascade 一併刪除，整個操作單一語句內完成
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := service.RequireAdmin(middleware.CurrentUser(c)); err != nil {
			return echo.NewHTTPError(http.StatusForbidden)
		}
		project, err := loadProject(c, db)
		if err != nil {
			return err
		}
		if err := store.DeleteProject(c.Request().Context(), db, project.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete project")
		}
		return c.Redirect(http.StatusFound, "/")
	}
}
