package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-chargen/internal/export"
	"github.com/KirkDiggler/rpg-chargen/internal/handlers/chargen/v1alpha1"
	"github.com/KirkDiggler/rpg-chargen/internal/observability"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/creation"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-chargen/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	sessionrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/creation_session"
	"github.com/KirkDiggler/rpg-chargen/internal/repositories/reference"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the character creation gRPC server. Settings come from --config and CHARGEN_ environment variables.`,
	RunE:  runServer,
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.New(cfg.Redis.Endpoints, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	realClock := clock.New()

	sessionRepo, err := sessionrepo.NewRedisRepository(&sessionrepo.Config{
		Client: redisClient,
		Clock:  realClock,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: redisClient,
		Clock:  realClock,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	source, err := newReferenceSource(cfg.Reference, logger)
	if err != nil {
		return err
	}
	store := reference.NewStore(&reference.StoreConfig{Logger: logger})

	engine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	bus := events.NewBus()
	creation.SubscribeEventLogger(bus, logger)

	orchestrator, err := creation.New(&creation.Config{
		Engine:         engine,
		SessionRepo:    sessionRepo,
		CharacterRepo:  characterRepo,
		Reference:      store,
		SessionIDGen:   idgen.NewUUID("sess"),
		CharacterIDGen: idgen.NewUUID("char"),
		Clock:          realClock,
		EventBus:       bus,
		Logger:         logger,
		SessionTTL:     cfg.Creation.SessionTTL,
		MaxLevel:       cfg.Creation.MaxLevel,
		ExportOptions:  export.Options{FontPath: cfg.Export.FontPath},
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CreationService: orchestrator,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	interceptorLogger := observability.InterceptorLogger(logger.Named("grpc"))
	recoveryOpt := grpc_recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("recovered from panic", zap.Any("panic", p), zap.Stack("stack"))
		return status.Error(codes.Internal, "internal error")
	})
	loggingOpt := grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger, loggingOpt),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger, loggingOpt),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterCharacterCreationServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	reflection.Register(srv)

	// Requests are answered while reference data loads; until it lands they
	// fail with REFERENCE_DATA_NOT_LOADED.
	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.Reference.LoadTimeout)
	defer loadCancel()
	go func() {
		if err := <-store.LoadAsync(loadCtx, source); err != nil {
			logger.Error("reference data unavailable", zap.String("source", source.Name()), zap.Error(err))
			return
		}
		healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", zap.String("addr", cfg.Server.Addr()))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		timer := time.NewTimer(cfg.Server.ShutdownTimeout)
		defer timer.Stop()

		select {
		case <-timer.C:
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
