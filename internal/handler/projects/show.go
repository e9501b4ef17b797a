// File: internal/handler/projects/show.go
package projects

import (
	"net/http"
	"strconv"

	"portfolio-blog/internal/database"
	"portfolio-blog/internal/flash"
	"portfolio-blog/internal/middleware"
	"portfolio-blog/internal/model"
	"portfolio-blog/internal/store"
	"portfolio-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// CommentRequest 留言表單欄位
type CommentRequest struct {
	Text string `form:"text" validate:"required"`
}

// projectID 解析路徑參數，非數字視同查無文章
func projectID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	return id, nil
}

func loadProject(c echo.Context, db database.DB) (*model.Project, error) {
	id, err := projectID(c)
	if err != nil {
		return nil, err
	}
	project, err := store.GetProjectByID(c.Request().Context(), db, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "project not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to load project")
	}
	return project, nil
}

func renderProject(c echo.Context, db database.DB, project *model.Project, commentText, formError string, status int) error {
	comments, err := store.ListCommentsByProject(c.Request().Context(), db, project.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load comments")
	}
	return c.Render(status, "project.html", view.ProjectPage{
		Page:        view.NewPage(c),
		Project:     project,
		Comments:    comments,
		CommentText: commentText,
		Error:       formError,
	})
}

// ShowHandler 文章內頁，查無 id 回 404
func ShowHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		project, err := loadProject(c, db)
		if err != nil {
			return err
		}
		return renderProject(c, db, project, "", "", http.StatusOK)
	}
}

// CommentHandler 送出留言
// 匿名者不建立留言，flash 後導向登入頁；成功後重新顯示同一頁（非轉址）
func CommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		project, err := loadProject(c, db)
		if err != nil {
			return err
		}

		user := middleware.CurrentUser(c)
		if user == nil {
			flash.Set(c, "You need to login or register to comment.")
			return c.Redirect(http.StatusFound, "/login")
		}

		var req CommentRequest
		if err := c.Bind(&req); err != nil {
			return renderProject(c, db, project, "", "invalid form data", http.StatusBadRequest)
		}
		if err := c.Validate(&req); err != nil {
			return renderProject(c, db, project, req.Text, "Comment text is required.", http.StatusBadRequest)
		}

		comment := &model.Comment{
			ProjectID: project.ID,
			AuthorID:  &user.ID,
			Text:      req.Text,
		}
		if _, err := store.CreateComment(c.Request().Context(), db, comment); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create comment")
		}

		return renderProject(c, db, project, "", "", http.StatusOK)
	}
}
