package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"github.com/dcu-infosec/phishstory/internal/api"
	"github.com/dcu-infosec/phishstory/internal/broker"
	"github.com/dcu-infosec/phishstory/internal/config"
	"github.com/dcu-infosec/phishstory/internal/monitoring"
	"github.com/dcu-infosec/phishstory/internal/policy"
	"github.com/dcu-infosec/phishstory/internal/snow"
	"github.com/dcu-infosec/phishstory/internal/storage"
	"github.com/dcu-infosec/phishstory/internal/ticket"
	"github.com/dcu-infosec/phishstory/pb"
)

const (
	grpcAddr = ":5000"
	httpAddr = ":8080"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load(os.Getenv("sysenv"))
	logger := config.NewLogger(os.Getenv("LOG_CFG"))
	slog.SetDefault(logger)

	logger.Info("🚀 starting phishstory service", "env", cfg.Env, "database_impacted", cfg.DatabaseImpacted)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := storage.NewMongoStore(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Error("❌ unable to connect to incident database", "error", err)
		os.Exit(1)
	}
	logger.Info("✅ incident database connected")

	metrics := monitoring.NewMetrics()
	datastore := snow.NewClient(cfg.SnowURL, cfg.SnowUser, cfg.SnowPass)
	publisher := broker.NewAMQPPublisher(cfg, metrics)
	defer publisher.Close()

	checker := policy.NewChecker(store, cfg.ExemptReporterIDs(), cfg.TrustedReporters)
	engine := ticket.NewEngine(datastore, store, publisher, checker, cfg.DatabaseImpacted, metrics, logger)

	grpcServer := grpc.NewServer()
	pb.RegisterPhishstoryServer(grpcServer, api.NewServer(engine, logger))

	listener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logger.Error("❌ unable to listen", "addr", grpcAddr, "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         httpAddr,
		Handler:      api.NewHealthRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("📊 http sidecar listening", "addr", httpAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http sidecar failed", "error", err)
		}
	}()

	go func() {
		logger.Info("✅ grpc server listening", "addr", grpcAddr)
		if err := grpcServer.Serve(listener); err != nil {
			logger.Error("grpc server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("🛑 shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("👋 shutdown complete")
}
