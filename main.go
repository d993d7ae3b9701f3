// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/database"
	doctorRepoPkg "medibook/database/repository/doctor"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/doctor"
	"medibook/services/slots"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.AppConfig.JWTSecret == "" {
		logger.Fatal("main: JWT_SECRET must be set")
	}
	utils.InitJWT(config.AppConfig.JWTSecret)

	database.InitDB()
	db := database.Database()
	if err := doctorRepoPkg.EnsureIndexes(context.Background(), db); err != nil {
		logger.Warn("main: doctor indexes not ensured", zap.Error(err))
	}

	if config.UsesRedisLock() {
		utils.InitLockClient()
	}
	if config.AppConfig.AuthCacheEnabled {
		utils.InitAuthCache()
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(db)

	// services.
	var locker slots.Locker
	if config.UsesRedisLock() {
		locker = slots.NewRedisLocker(utils.LockClient, config.AppConfig.LockTTL, config.AppConfig.LockWait)
		logger.Info("main: schedule writes locked through redis")
	} else {
		locker = slots.NewMemoryLocker()
	}
	slotStore := slots.NewStore(doctorRepo, userRepo, locker, logger.Named("slots"))
	doctorService := doctor.NewDefaultDoctorService(doctorRepo, userRepo, logger.Named("doctor"))

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: utils.AuthCacheClient,
		Slots:     handlers.NewSlotHandler(slotStore),
		Doctors:   handlers.NewDoctorHandler(doctorService),
		Admin:     handlers.NewAdminHandler(doctorService, utils.AuthCacheClient),
	}
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, config.AppConfig.HealthInterval, utils.RedisClients(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	for _, client := range utils.RedisClients() {
		_ = client.Close()
	}
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect failed: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
