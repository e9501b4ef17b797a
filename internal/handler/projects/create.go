// File: internal/handler/projects/create.go
package projects

import (
	"net/http"
	"time"

	"portfolio-blog/internal/database"
	"portfolio-blog/internal/middleware"
	"portfolio-blog/internal/model"
	"portfolio-blog/internal/service"
	"portfolio-blog/internal/store"
	"portfolio-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// ProjectRequest 新增與編輯文章共用的表單欄位
type ProjectRequest struct {
	Title    string `form:"title" validate:"required"`
	Subtitle string `form:"subtitle" validate:"required"`
	ImgURL   string `form:"img_url" validate:"required,url"`
	Body     string `form:"body" validate:"required"`
}

// dateStamp 發佈日期字串，格式 "Month DD, YYYY"
func dateStamp(t time.Time) string {
	return t.Format("January 02, 2006")
}

// NewProjectFormHandler 顯示新增文章表單（限管理員）
func NewProjectFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := service.RequireAdmin(middleware.CurrentUser(c)); err != nil {
			return echo.NewHTTPError(http.StatusForbidden)
		}
		return c.Render(http.StatusOK, "make-project.html", view.ProjectFormPage{Page: view.NewPage(c)})
	}
}

// CreateProjectHandler 建立文章（限管理員）
// 重複標題由唯一性約束攔下並以表單錯誤呈現
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if err := service.RequireAdmin(user); err != nil {
			return echo.NewHTTPError(http.StatusForbidden)
		}

		var req ProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.Render(http.StatusBadRequest, "make-project.html", view.ProjectFormPage{
				Page:  view.NewPage(c),
				Error: "invalid form data",
			})
		}
		if err := c.Validate(&req); err != nil {
			return c.Render(http.StatusBadRequest, "make-project.html", view.ProjectFormPage{
				Page:     view.NewPage(c),
				Title:    req.Title,
				Subtitle: req.Subtitle,
				ImgURL:   req.ImgURL,
				Body:     req.Body,
				Error:    "All fields are required and the image URL must be valid.",
			})
		}

		project := &model.Project{
			AuthorID: &user.ID,
			Title:    req.Title,
			Subtitle: req.Subtitle,
			Date:     dateStamp(time.Now()),
			Body:     req.Body,
			ImgURL:   req.ImgURL,
		}
		if _, err := store.CreateProject(c.Request().Context(), db, project); err != nil {
			if store.IsUniqueViolation(err) {
				return c.Render(http.StatusBadRequest, "make-project.html", view.ProjectFormPage{
					Page:     view.NewPage(c),
					Title:    req.Title,
					Subtitle: req.Subtitle,
					ImgURL:   req.ImgURL,
					Body:     req.Body,
					Error:    "A project with that title already exists.",
				})
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create project")
		}

		return c.Redirect(http.StatusFound, "/")
	}
}
