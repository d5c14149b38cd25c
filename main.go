package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/cache"
	"github.com/kiselev-pavel-dev/menu-cafe/config"
	"github.com/kiselev-pavel-dev/menu-cafe/database"
	"github.com/kiselev-pavel-dev/menu-cafe/export"
	"github.com/kiselev-pavel-dev/menu-cafe/middlewares"
	"github.com/kiselev-pavel-dev/menu-cafe/repository"
	"github.com/kiselev-pavel-dev/menu-cafe/router"
	"github.com/kiselev-pavel-dev/menu-cafe/services"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}

	store, err := cache.New(cfg.Cache())
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up cache: %v", err)
	}
	defer store.Close()

	if err := utils.RegisterValidators(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to register validators: %v", err)
	}

	deps := buildServices(db, store, cfg)
	deps.Export.Start()
	defer deps.Export.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Printf("Server shutdown: %v", err)
	}
}

func buildServices(db *gorm.DB, store cache.Store, cfg *config.Config) router.Dependencies {
	menus := services.NewMenuService(repository.NewMenuRepository(db), store)
	submenus := services.NewSubMenuService(repository.NewSubMenuRepository(db), menus, store)
	dishes := services.NewDishService(repository.NewDishRepository(db), submenus, store)
	exporter := services.NewExportService(
		repository.NewCatalogueRepository(db),
		export.NewWorkbook(),
		services.ExportConfig{
			Dir:       cfg.ExportDir,
			Workers:   cfg.ExportWorkers,
			QueueSize: cfg.ExportQueueSize,
			Retention: cfg.ExportRetention,
		},
	)

	return router.Dependencies{
		Menus:       menus,
		SubMenus:    submenus,
		Dishes:      dishes,
		Export:      exporter,
		APIPrefix:   cfg.APIPrefix,
		CORSOrigin:  cfg.CORSOrigin,
		RateLimiter: middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
	}
}
