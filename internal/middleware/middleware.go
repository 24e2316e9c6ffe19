package middleware

import (
	"net/http"

	"employee-directory/internal/backend"

	"github.com/labstack/echo/v4"
)

// IsXHR 判斷請求是否由頁面腳本發出
func IsXHR(c echo.Context) bool {
	return c.Request().Header.Get(backend.RequestedWithHeader) == backend.RequestedWithValue
}

// RequireXHR 只放行帶 X-Requested-With: XMLHttpRequest 的請求，其餘導回首頁
func RequireXHR(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsXHR(c) {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}
