package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "weepify/internal/app"
	"weepify/internal/bootstrap"
	"weepify/internal/cache"
	"weepify/internal/platform/rabbitmq"
	"weepify/internal/repository"
	"weepify/internal/transport/http/handler"
	"weepify/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.StaticFile("/", "web/index.html")
	router.StaticFile("/login", "web/login.html")
	router.StaticFile("/register", "web/register.html")
	router.StaticFile("/log", "web/log.html")
	router.StaticFile("/history", "web/history.html")
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	cryLogRepo := repository.NewCryLogRepository(app.MySQL)
	activityRepo := repository.NewActivityLogRepository(app.MySQL)

	statsCache := cache.NewStatsCache(
		app.Redis,
		time.Duration(app.Config.Redis.StatsTTLSeconds)*time.Second,
		time.Duration(app.Config.Redis.StatsDirtyTTLSeconds)*time.Second,
	)
	activityPublisher := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityLogQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	cryLogService := appsvc.NewCryLogService(cryLogRepo, activityPublisher, statsCache)
	statsService := appsvc.NewStatsService(cryLogRepo, statsCache)
	activityService := appsvc.NewActivityService(activityRepo)

	authHandler := handler.NewAuthHandler(authService)
	cryLogHandler := handler.NewCryLogHandler(cryLogService)
	statsHandler := handler.NewStatsHandler(statsService)
	activityHandler := handler.NewActivityHandler(activityService)

	v1 := router.Group("/api/v1")
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	logGroup := v1.Group("/logs")
	logGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	logGroup.POST("", cryLogHandler.Create)
	logGroup.GET("", cryLogHandler.List)
	logGroup.GET("/date/:date", cryLogHandler.ListByDate)
	logGroup.GET("/:id", cryLogHandler.Get)
	logGroup.PUT("/:id", cryLogHandler.Update)
	logGroup.DELETE("/:id", cryLogHandler.Delete)

	statsGroup := v1.Group("/stats")
	statsGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	statsGroup.GET("", statsHandler.Get)

	activityGroup := v1.Group("/activity")
	activityGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	activityGroup.GET("", activityHandler.List)

	return router
}
