package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"hotelops-backend/access"
	"hotelops-backend/config"
	"hotelops-backend/controllers"
	"hotelops-backend/events"
	"hotelops-backend/logger"
	"hotelops-backend/metrics"
	"hotelops-backend/realtime"
	"hotelops-backend/routes"
	"hotelops-backend/services"
)

func main() {
	cfg, envLoaded := config.Load()

	zlog, err := logger.InitLogger(logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	if !envLoaded {
		zlog.Info(".env not found; using process environment")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	// money fields travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	db, err := config.ConnectDatabase(cfg, zlog)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	zlog.Info("database connected and migrated")

	rdb := config.NewRedisClient(cfg.RedisAddr)
	if rdb == nil {
		zlog.Warn("redis unavailable; logout will not revoke tokens server-side")
	} else {
		defer rdb.Close()
	}

	m := metrics.New("hotelops", prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(zlog.Named("realtime"))
	hub.OnCount = func(n int) { m.KitchenClientsGauge.Set(float64(n)) }
	go hub.Run(ctx)

	publisher := events.NewPublisher(cfg.RabbitMQURL, zlog.Named("events"))
	if !publisher.Enabled() {
		zlog.Warn("RABBITMQ_URL not set; kitchen ticket events are not published")
	}

	// Services
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, rdb)
	images := services.NewImageService(cfg.UploadDir)
	authService := services.NewAuthService(db, tokens, m, zlog.Named("auth"))
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db, m)
	staffService := services.NewStaffService(db)
	departmentService := services.NewDepartmentService(db)
	attendanceService := services.NewAttendanceService(db)
	permissionService := services.NewPermissionService(db)
	orderService := services.NewOrderService(db, events.Fanout{hub, publisher}, m, zlog.Named("orders"))
	dashboardService := services.NewDashboardService(db)
	userService := services.NewUserService(db)

	gate := access.NewGate(cfg.LoginPath, cfg.UnauthorizedPath)

	// Controllers
	handlers := routes.Controllers{
		Auth:        controllers.NewAuthController(authService),
		Access:      controllers.NewAccessController(access.DefaultMatrix(), gate),
		Dashboard:   controllers.NewDashboardController(dashboardService),
		Hotels:      controllers.NewHotelController(hotelService, images),
		Rooms:       controllers.NewRoomController(roomService, hotelService),
		Staff:       controllers.NewStaffController(staffService, images),
		Departments: controllers.NewDepartmentController(departmentService),
		Attendance:  controllers.NewAttendanceController(attendanceService),
		Permissions: controllers.NewPermissionController(permissionService),
		Orders:      controllers.NewOrderController(orderService, hub, realtime.TopicKitchen),
		Users:       controllers.NewUserController(userService),
	}

	router := routes.SetupRouter(handlers, routes.Options{
		CORSOrigins: cfg.CORSOrigins,
		UploadDir:   cfg.UploadDir,
		Gate:        gate,
		Tokens:      tokens,
		Metrics:     m,
		Logger:      zlog,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutdown signal received, shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
		return
	}
	zlog.Info("server stopped gracefully")
}
