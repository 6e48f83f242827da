package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/spellforge/internal/config"
	combatv1alpha1 "github.com/KirkDiggler/spellforge/internal/handlers/combat/v1alpha1"
	"github.com/KirkDiggler/spellforge/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/spellforge/internal/redis"
	"github.com/KirkDiggler/spellforge/internal/repositories/player"
	"github.com/KirkDiggler/spellforge/internal/telemetry"
)

const (
	redisPingTimeout = 5 * time.Second
	shutdownTimeout  = 30 * time.Second
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the spellforge gRPC server with the combat service, health checks and reflection.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides SPELLFORGE_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	setupLogging(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer flushCancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	redis, err := redisclient.Dial(ctx, cfg.RedisAddr, cfg.RedisOptions(), redisPingTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		_ = redis.Close()
	}()

	playerRepo, err := player.NewRedis(&player.RedisConfig{Client: redis})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	services, err := newApp(&appConfig{
		Server:      cfg,
		PlayerRepo:  playerRepo,
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		return err
	}

	combatHandler, err := combatv1alpha1.NewHandler(&combatv1alpha1.HandlerConfig{
		EncounterService: services.encounters,
		CraftingService:  services.crafting,
	})
	if err != nil {
		return fmt.Errorf("failed to create combat handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	combatv1alpha1.RegisterCombatServiceServer(srv, combatHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(combatv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// logFunc bridges the grpc middleware logger onto slog
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
