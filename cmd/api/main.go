package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/edupanel/staff-api/api/swagger"
	"github.com/edupanel/staff-api/internal/handler"
	"github.com/edupanel/staff-api/internal/kvstore"
	"github.com/edupanel/staff-api/internal/middleware"
	"github.com/edupanel/staff-api/internal/repository"
	"github.com/edupanel/staff-api/internal/service"
	"github.com/edupanel/staff-api/pkg/config"
	"github.com/edupanel/staff-api/pkg/logger"
	corsmiddleware "github.com/edupanel/staff-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edupanel/staff-api/pkg/middleware/requestid"
)

// @title Staff Panel API
// @version 0.1.0
// @description Roster, schedule, and payout backend for the staff dashboard
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	store, closeStore := buildStore(cfg, logr)
	defer closeStore()
	store = kvstore.WithNamespace(store, cfg.Storage.Namespace)
	store = kvstore.WithInstrumentation(store, metricsSvc.ObserveStoreOperation)

	teacherRepo := repository.NewTeacherRepository(store, logr)
	scheduleRepo := repository.NewScheduleRepository(store, logr)

	validate := validator.New()
	scheduleSvc := service.NewScheduleService(scheduleRepo, metricsSvc, logr)
	rosterSvc := service.NewRosterService(teacherRepo, scheduleSvc, validate, logr)
	payoutSvc := service.NewPayoutService()
	dashboardSvc := service.NewDashboardService(rosterSvc, scheduleSvc, payoutSvc, logr)
	exportSvc := service.NewExportService(rosterSvc, scheduleSvc, payoutSvc)

	teacherHandler := handler.NewTeacherHandler(rosterSvc, scheduleSvc, payoutSvc)
	scheduleHandler := handler.NewScheduleHandler(rosterSvc, scheduleSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, rosterSvc, scheduleSvc, payoutSvc)
	exportHandler := handler.NewExportHandler(exportSvc, cfg.Exports.Enabled)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, store.Available)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/teachers", teacherHandler.List)
		api.POST("/teachers", teacherHandler.Create)
		api.GET("/teachers/:id", teacherHandler.Get)
		api.PATCH("/teachers/:id", teacherHandler.Patch)
		api.DELETE("/teachers/:id", teacherHandler.Delete)
		api.GET("/teachers/:id/engagement", teacherHandler.Engagement)

		api.GET("/schedule", scheduleHandler.Get)
		api.PUT("/schedule/:teacherId/slots/:slot", scheduleHandler.UpdateSlot)

		api.GET("/dashboard", dashboardHandler.Summary)
		api.GET("/payouts", dashboardHandler.Payouts)
		api.GET("/payouts/report", exportHandler.PayoutReport)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "storage", cfg.Storage.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildStore selects the blob-store backend. A backend that cannot be reached
// degrades to the unavailable store rather than aborting startup: reads come
// back empty and writes are dropped, matching the storage-less environment
// the dashboard originally tolerated.
func buildStore(cfg *config.Config, logr *zap.Logger) (kvstore.Store, func()) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.StorageFile:
		store, err := kvstore.NewFile(cfg.Storage.Dir)
		if err != nil {
			logr.Warn("file store unavailable, running degraded", zap.Error(err))
			return kvstore.Unavailable{}, noop
		}
		return store, noop
	case config.StorageRedis:
		store, err := kvstore.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis store unavailable, running degraded", zap.Error(err))
			return kvstore.Unavailable{}, noop
		}
		return store, func() { _ = store.Close() }
	case config.StoragePostgres:
		store, err := kvstore.NewPostgres(cfg.Database)
		if err != nil {
			logr.Warn("postgres store unavailable, running degraded", zap.Error(err))
			return kvstore.Unavailable{}, noop
		}
		return store, func() { _ = store.Close() }
	case config.StorageNone:
		return kvstore.Unavailable{}, noop
	default:
		return kvstore.NewMemory(), noop
	}
}
