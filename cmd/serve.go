package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/controller"
	grpcserver "github.com/investor-properties-ny/ms-go-investor-subscriptions/app/grpc"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/metrics"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/types"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/config"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	authclient "github.com/vibast-solutions/lib-go-auth/client"
	authmiddleware "github.com/vibast-solutions/lib-go-auth/middleware"
	authlibservice "github.com/vibast-solutions/lib-go-auth/service"
	"google.golang.org/grpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  "Start both HTTP (Echo) and gRPC servers for the investor subscriptions service.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	collector := metrics.NewCollector()
	subscriptionService, cleanup := mustCreateSubscriptionService(cfg, collector)
	defer cleanup()

	grpcSubscriptionServer := grpcserver.NewServer(subscriptionService)
	subscriptionController := controller.NewSubscriptionController(subscriptionService)

	authGRPCClient, err := authclient.NewGRPCClientFromAddr(context.Background(), cfg.InternalEndpoints.AuthGRPCAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize auth gRPC client")
	}
	defer authGRPCClient.Close()
	internalAuthService := authlibservice.NewInternalAuthService(authGRPCClient)
	echoInternalAuthMiddleware := authmiddleware.NewEchoInternalAuthMiddleware(internalAuthService)
	grpcInternalAuthMiddleware := authmiddleware.NewGRPCInternalAuthMiddleware(internalAuthService)

	e := setupHTTPServer(subscriptionController, collector, echoInternalAuthMiddleware, cfg.App.ServiceName)
	grpcSrv, lis := setupGRPCServer(cfg, grpcSubscriptionServer, collector, grpcInternalAuthMiddleware, cfg.App.ServiceName)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	go func() {
		logrus.WithField("addr", lis.Addr().String()).Info("Starting gRPC server")
		if err := grpcSrv.Serve(lis); err != nil {
			logrus.WithError(err).Fatal("gRPC server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}
	grpcSrv.GracefulStop()

	logrus.Info("Server stopped")
}

func setupHTTPServer(
	subscriptionController *controller.SubscriptionController,
	collector *metrics.Collector,
	internalAuthMiddleware *authmiddleware.EchoInternalAuthMiddleware,
	appServiceName string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			entry := logrus.WithFields(logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"request_id": v.RequestID,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("http_request")
				return nil
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return "rest-" + uuid.NewString()
		},
	}))
	e.Use(collector.EchoMiddleware())
	e.Use(internalAuthMiddleware.RequireInternalAccess(appServiceName))

	e.GET("/health", subscriptionController.Health)
	e.GET("/metrics", echo.WrapHandler(collector.Handler()))
	e.GET("/plans", subscriptionController.ListPlans)

	investors := e.Group("/investors/:id")
	investors.POST("/subscription", subscriptionController.Subscribe)
	investors.GET("/subscription", subscriptionController.CheckSubscription)
	investors.POST("/subscription/cancel", subscriptionController.CancelSubscription)
	investors.GET("/subscription-records", subscriptionController.ListSubscriptionRecords)

	return e
}

func setupGRPCServer(
	cfg *config.Config,
	subscriptionServer *grpcserver.Server,
	collector *metrics.Collector,
	internalAuthMiddleware *authmiddleware.GRPCInternalAuthMiddleware,
	appServiceName string,
) (*grpc.Server, net.Listener) {
	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to listen on gRPC port")
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoveryInterceptor(),
			grpcserver.RequestIDInterceptor(),
			grpcserver.LoggingInterceptor(collector),
			internalAuthMiddleware.UnaryRequireInternalAccess(appServiceName),
		),
	)
	types.RegisterInvestorSubscriptionsServiceServer(grpcSrv, subscriptionServer)

	return grpcSrv, lis
}
