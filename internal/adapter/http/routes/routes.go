package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "gashub/docs" // generated by swag init
	"gashub/internal/adapter/http/middleware"
	"gashub/internal/config"
	"gashub/internal/logging"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logging.Setup(cfg.Log); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	accessLog, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer deps.Close()

	router := newRouter(deps, accessLog)
	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).WithField("store", cfg.OrderStore).Info("[http] listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("[http] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("[http] graceful shutdown failed")
	}
}

// newRouter builds the engine. Request lines go to accessLog, tagged
// component=http, so they can be filtered apart from application logs.
func newRouter(deps *dependencies, accessLog *log.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps, accessLog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, deps.orderHandler)
	addReceivablesRoutes(v1, deps.receivablesHandler)
	return router
}

func setMiddlewares(router *gin.Engine, deps *dependencies, accessLog *log.Logger) {
	if accessLog == nil {
		accessLog = log.StandardLogger()
	}
	router.Use(gin.LoggerWithWriter(accessLog.WithField("component", "http").WriterLevel(log.InfoLevel)))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("path", c.Request.URL.Path).Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Session(deps.verifier))
}
