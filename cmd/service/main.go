// File: cmd/service/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"portfolio-blog/internal/cache"
	"portfolio-blog/internal/config"
	"portfolio-blog/internal/database"
	"portfolio-blog/internal/router"
	"portfolio-blog/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

// htmlErrorHandler 把 echo.HTTPError 渲染成錯誤頁
// 403/404 只給通用訊息，不洩漏細節
func htmlErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		if httpErr, ok := err.(*echo.HTTPError); ok {
			code = httpErr.Code
		}
		message := "Something went wrong, please try again later."
		switch code {
		case http.StatusForbidden:
			message = "You are not allowed to do that."
		case http.StatusNotFound:
			message = "Page not found."
		}
		if renderErr := c.Render(code, "error.html", view.ErrorPage{
			Page:    view.NewPage(c),
			Status:  code,
			Message: message,
		}); renderErr != nil {
			e.Logger.Error(renderErr)
		}
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定讀取失敗: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	renderer, err := view.New()
	if err != nil {
		return fmt.Errorf("模板解析失敗: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer
	e.HTTPErrorHandler = htmlErrorHandler(e)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, cfg)

	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
