// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"employee-directory/internal/cache"
	"employee-directory/internal/database"
	"employee-directory/internal/flash"
	"employee-directory/internal/handler"
	"employee-directory/internal/handler/employees"
	"employee-directory/internal/handler/live"
	"employee-directory/internal/middleware"
	"employee-directory/internal/service"
	"employee-directory/internal/session"
	"employee-directory/internal/upload"
	"employee-directory/internal/web"
)

// Deps 為路由所需的相依元件
type Deps struct {
	DB        database.DB
	Cache     cache.Cache
	Directory service.Directory
	Storage   upload.Storage
	UploadDir string
	Flash     *flash.Store
	Live      session.Config
	Log       *logrus.Entry
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	log := d.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if d.Live.Log == nil {
		d.Live.Log = log.WithField("component", "live")
	}

	// 目錄頁面與 live session
	e.GET("/", employees.IndexHandler(d.Flash, log))
	e.GET("/live", live.LiveHandler(d.Live))

	// 搜尋只接受頁面腳本的請求
	e.GET("/search", employees.SearchHandler(d.Directory, log), middleware.RequireXHR)

	// 新增、編輯、刪除 (表單送出後以 flash 導回首頁)
	e.GET("/add", employees.AddFormHandler())
	e.POST("/add", employees.CreateEmployeeHandler(d.Directory, d.Storage, d.Flash, log))
	e.GET("/edit/:id", employees.EditFormHandler(d.Directory, d.Flash, log))
	e.POST("/edit/:id", employees.UpdateEmployeeHandler(d.Directory, d.Storage, d.Flash, log))
	e.POST("/delete/:id", employees.DeleteEmployeeHandler(d.Directory, d.Flash, log))

	// 健康檢查
	e.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 靜態檔案
	if d.UploadDir != "" {
		e.Static("/static/uploads/", d.UploadDir)
	}
	e.StaticFS("/static/", web.Static())
}
