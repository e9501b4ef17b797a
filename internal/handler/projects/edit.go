// File: internal/handler/projects/edit.go
package projects

import (
	"fmt"
	"net/http"

	"portfolio-blog/internal/database"
	"portfolio-blog/internal/middleware"
	"portfolio-blog/internal/service"
	"portfolio-blog/internal/store"
	"portfolio-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// EditProjectFormHandler 以現值預填編輯表單（限管理員）
func EditProjectFormHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := service.RequireAdmin(middleware.CurrentUser(c)); err != nil {
			return echo.NewHTTPError(http.StatusForbidden)
		}
		project, err := loadProject(c, db)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "make-project.html", view.ProjectFormPage{
			Page:      view.NewPage(c),
			IsEdit:    true,
			ProjectID: project.ID,
			Title:     project.Title,
			Subtitle:  project.Subtitle,
			ImgURL:    project.ImgURL,
			Body:      project.Body,
		})
	}
}

// EditProjectHandler 覆寫標題、副標、圖片與內文，作者與日期不變（限管理員）
func EditProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := service.RequireAdmin(middleware.CurrentUser(c)); err != nil {
			return echo.NewHTTPError(http.StatusForbidden)
		}
		project, err := loadProject(c, db)
		if err != nil {
			return err
		}

		var req ProjectRequest
		formPage := func(errMsg string) view.ProjectFormPage {
			return view.ProjectFormPage{
				Page:      view.NewPage(c),
				IsEdit:    true,
				ProjectID: project.ID,
				Title:     req.Title,
				Subtitle:  req.Subtitle,
				ImgURL:    req.ImgURL,
				Body:      req.Body,
				Error:     errMsg,
			}
		}

		if err := c.Bind(&req); err != nil {
			return c.Render(http.StatusBadRequest, "make-project.html", formPage("invalid form data"))
		}
		if err := c.Validate(&req); err != nil {
			return c.Render(http.StatusBadRequest, "make-project.html", formPage("All fields are required and the image URL must be valid."))
		}

		project.Title = req.Title
		project.Subtitle = req.Subtitle
		project.ImgURL = req.ImgURL
		project.Body = req.Body
		if err := store.UpdateProject(c.Request().Context(), db, project); err != nil {
			if store.IsUniqueViolation(err) {
				return c.Render(http.StatusBadRequest, "make-project.html", formPage("A project with that title already exists."))
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to update project")
		}

		return c.Redirect(http.StatusFound, fmt.Sprintf("/project/%d", project.ID))
	}
}
