// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"portfolio-blog/internal/cache"
	"portfolio-blog/internal/config"
	"portfolio-blog/internal/database"
	"portfolio-blog/internal/handler"
	"portfolio-blog/internal/handler/auth"
	"portfolio-blog/internal/handler/projects"
	"portfolio-blog/internal/metrics"
	"portfolio-blog/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	e.Use(middleware.LoadUser(db, rdb, cfg.SessionSecret))
	e.Use(metrics.Middleware())

	// 公開頁面
	e.GET("/", projects.ListHandler(db))
	e.GET("/contact", handler.ContactHandler())
	e.GET("/project/:id", projects.ShowHandler(db))
	e.POST("/project/:id", projects.CommentHandler(db))

	// 註冊 / 登入 / 登出
	e.GET("/register", auth.RegisterFormHandler())
	e.POST("/register", auth.RegisterHandler(db, rdb, cfg.SessionSecret, cfg.SessionTTL))
	e.GET("/login", auth.LoginFormHandler())
	e.POST("/login", auth.LoginHandler(db, rdb, cfg.SessionSecret, cfg.SessionTTL))
	e.GET("/logout", auth.LogoutHandler(rdb, cfg.SessionSecret))

	// 管理員專屬文章維護，權限檢查在各 handler 開頭
	e.GET("/new-project", projects.NewProjectFormHandler())
	e.POST("/new-project", projects.CreateProjectHandler(db))
	e.GET("/edit-project/:id", projects.EditProjectFormHandler(db))
	e.POST("/edit-project/:id", projects.EditProjectHandler(db))
	e.GET("/delete/:id", projects.DeleteProjectHandler(db))

	// 維運端點
	e.GET("/healthz", handler.HealthzHandler(db))
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}
