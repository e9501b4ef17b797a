// File: internal/handler/healthz.go
package handler

import (
	"net/http"

	"portfolio-blog/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthzResponse 健康檢查回應模型
type HealthzResponse struct {
	Message string `json:"message"`
}

// HealthzHandler 健康檢查，確認資料庫連線正常
func HealthzHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, HealthzResponse{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthzResponse{Message: "ok"})
	}
}
