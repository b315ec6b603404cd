package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcv1alpha1 "github.com/KirkDiggler/dominions-mapgen/internal/handlers/grpc/v1alpha1"
	"github.com/KirkDiggler/dominions-mapgen/internal/handlers/http/middleware"
	httpv0 "github.com/KirkDiggler/dominions-mapgen/internal/handlers/http/v0"
	catalogorch "github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/catalog"
	"github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/mapgen"
	"github.com/KirkDiggler/dominions-mapgen/internal/pkg/idgen"
	"github.com/KirkDiggler/dominions-mapgen/internal/templates"
)

const shutdownTimeout = 30 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP and gRPC servers",
	Long:  `Start the map generator with the HTTP API, the gRPC map service and Prometheus metrics.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	loader, err := templates.NewLoader(&templates.Config{Dir: a.cfg.TemplateDir})
	if err != nil {
		return fmt.Errorf("failed to create template loader: %w", err)
	}

	mapService, err := mapgen.NewOrchestrator(&mapgen.Config{
		CatalogRepo:    a.catalogRepo,
		TemplateLoader: loader,
		Logger:         a.logger,
		BaseTemplate:   a.cfg.TemplateBase,
	})
	if err != nil {
		return fmt.Errorf("failed to create map service: %w", err)
	}

	catalogService, err := catalogorch.NewOrchestrator(&catalogorch.Config{
		CatalogRepo: a.catalogRepo,
		Logger:      a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog service: %w", err)
	}

	router, err := newRouter(a, mapService, catalogService)
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	grpcServer, healthServer, err := newGRPCServer(a, mapService)
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", a.cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 2)
	go func() {
		a.logger.Info("HTTP server starting", zap.Int("port", a.cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		a.logger.Info("gRPC server starting", zap.Int("port", a.cfg.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("received shutdown signal, gracefully stopping")
	case err = <-errChan:
		a.logger.Error("server failed, shutting down", zap.Error(err))
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		a.logger.Error("HTTP server forced to shutdown", zap.Error(shutdownErr))
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-shutdownCtx.Done():
		a.logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		a.logger.Info("servers stopped gracefully")
	}

	return err
}

func newRouter(a *app, mapService mapgen.Service, catalogService catalogorch.Service) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	if a.cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(idgen.NewUUID("req")))
	router.Use(middleware.Logger(a.logger))
	router.Use(gin.Recovery())

	p := ginprometheus.NewPrometheus("gin")

	corsConfig := cors.DefaultConfig()
	if origins := a.cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
		a.logger.Info("CORS_ALLOWED_ORIGINS not set, allowing all origins")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", middleware.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	handler, err := httpv0.NewHandler(&httpv0.HandlerConfig{
		MapService:     mapService,
		CatalogService: catalogService,
		Logger:         a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create http handler: %w", err)
	}
	handler.RegisterRoutes(router)

	// after routes so every route gets its own label
	p.Use(router)

	return router, nil
}

func newGRPCServer(a *app, mapService mapgen.Service) (*grpc.Server, *health.Server, error) {
	srv := grpc.NewServer(grpcv1alpha1.ServerOptions(a.logger.Named("grpc"))...)

	handler, err := grpcv1alpha1.NewHandler(&grpcv1alpha1.HandlerConfig{
		MapService: mapService,
		Logger:     a.logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create map handler: %w", err)
	}
	grpcv1alpha1.RegisterMapServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(grpcv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, healthServer, nil
}
