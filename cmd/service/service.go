package main

import (
	"context"
	"fmt"
	"os"

	"employee-directory/internal/backend"
	"employee-directory/internal/cache"
	"employee-directory/internal/config"
	"employee-directory/internal/database"
	"employee-directory/internal/flash"
	"employee-directory/internal/logging"
	"employee-directory/internal/router"
	"employee-directory/internal/service"
	"employee-directory/internal/session"
	"employee-directory/internal/upload"
	"employee-directory/internal/web"
	"employee-directory/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "employee-directory/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newStorage      = func(dir string) (upload.Storage, error) { return upload.NewFSStorage(dir) }
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig(config.DefaultEnvFiles...)
	if err != nil {
		return err
	}
	log := logrus.NewEntry(logging.New(cfg.LogLevel))

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rc, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rc.Close()

	if cfg.MigrateReset {
		log.Warn("rolling back all migrations")
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %v", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	storage, err := newStorage(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("上傳目錄無法使用: %v", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}
	shell, err := renderer.Shell()
	if err != nil {
		return err
	}

	// 搜尋請求在 worker pool 上執行，避免阻塞 session loop
	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer
	e.Debug = cfg.LogLevel == "debug"
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:        db,
		Cache:     rc,
		Directory: service.NewEmployeeService(db, rc, cfg.SearchCacheTTL, log),
		Storage:   storage,
		UploadDir: cfg.UploadDir,
		Flash:     flash.NewStore(cfg.CookieSecure),
		Live: session.Config{
			Shell:      shell,
			Searcher:   backend.NewClient(cfg.BackendURL, nil),
			Pool:       wp,
			Debounce:   cfg.SearchDebounce,
			ToastDelay: cfg.ToastDelay,
			Log:        log.WithField("component", "live"),
		},
		Log: log,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.WithField("addr", cfg.Addr()).Info("starting server")
	return startServer(e, cfg.Addr())
}
