package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/simaogato/savings-backend/internal/adapter/cache"
	grpcadapter "github.com/simaogato/savings-backend/internal/adapter/grpc"
	"github.com/simaogato/savings-backend/internal/adapter/grpc/savingsv1"
	"github.com/simaogato/savings-backend/internal/adapter/repository/memory"
	"github.com/simaogato/savings-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/savings-backend/internal/config"
	"github.com/simaogato/savings-backend/internal/domain"
	"github.com/simaogato/savings-backend/internal/logger"
	"github.com/simaogato/savings-backend/internal/usecase/account"
	"github.com/simaogato/savings-backend/internal/usecase/customer"
	"github.com/simaogato/savings-backend/internal/usecase/dashboard"
	"github.com/simaogato/savings-backend/internal/usecase/milestone"
	"github.com/simaogato/savings-backend/internal/usecase/savings"
	"github.com/simaogato/savings-backend/internal/usecase/seeder"
)

const shutdownTimeout = 10 * time.Second

// repositories groups the stores of one data backend
type repositories struct {
	accounts   domain.AccountRepository
	directory  domain.AccountDirectory
	customers  domain.CustomerRepository
	milestones domain.MilestoneRepository
	savings    domain.SavingsRepository
	close      func() error
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := run(cfg, zl); err != nil {
		zl.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 1. Setup data backend
	repos, err := openRepositories(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer repos.close() //nolint:errcheck

	// 2. Optional Redis cache in front of the account directory
	directory := repos.directory
	var directoryCache account.DirectoryCache
	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rdb.Close() //nolint:errcheck
		cached := cache.NewAccountDirectory(rdb, repos.directory, cfg.Redis.TTL, zl)
		directory = cached
		directoryCache = cached
		zl.Info("Account cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// 3. Initialize Services (Use Cases)
	customerService := customer.NewService(repos.customers, repos.accounts, zl)
	accountService := account.NewService(repos.accounts, customerService, zl)
	accountService.Cache = directoryCache
	milestoneService := milestone.NewService(repos.milestones, directory, zl)
	savingsService := savings.NewService(repos.savings, directory, zl)
	dashboardService := dashboard.NewDashboardService(repos.milestones, repos.savings, directory)

	systemSeeder := seeder.NewSystemSeeder(repos.accounts, seeder.AdminCredentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if err := systemSeeder.Seed(ctx); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	// 4. gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(zl),
			grpcadapter.AuthInterceptor(cfg.Auth.APIToken),
		),
	)
	grpcAdapter := grpcadapter.NewServer(accountService, customerService, milestoneService, savingsService, dashboardService)
	savingsv1.RegisterSavingsServiceServer(grpcServer, grpcAdapter)
	reflection.Register(grpcServer)

	grpcAddr := fmt.Sprintf(":%d", cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", grpcAddr, err)
	}

	// 5. Metrics endpoint
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zl.Info("gRPC server listening", zap.String("addr", grpcAddr))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		zl.Info("Metrics server listening", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zl.Info("Shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			zl.Warn("Metrics server shutdown failed", zap.Error(err))
		}

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcServer.Stop()
		}
		zl.Info("gRPC server stopped")
		return nil
	})

	return g.Wait()
}

// openRepositories connects the configured data backend
func openRepositories(ctx context.Context, cfg config.Config, zl *zap.Logger) (*repositories, error) {
	if cfg.DataBackend == config.BackendMemory {
		zl.Warn("Using in-memory data backend; data is lost on exit")
		accounts := memory.NewAccountStore()
		return &repositories{
			accounts:   accounts,
			directory:  accounts,
			customers:  memory.NewCustomerStore(),
			milestones: memory.NewMilestoneStore(),
			savings:    memory.NewSavingsStore(),
			close:      func() error { return nil },
		}, nil
	}

	db, err := postgres.NewDB(ctx, cfg.DB.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := postgres.RunMigrations(db); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	zl.Info("Database ready", zap.String("host", cfg.DB.Host), zap.String("name", cfg.DB.Name))

	accounts := postgres.NewAccountRepository(db, zl)
	return &repositories{
		accounts:   accounts,
		directory:  accounts,
		customers:  postgres.NewCustomerRepository(db, zl),
		milestones: postgres.NewMilestoneRepository(db, zl),
		savings:    postgres.NewSavingsRepository(db, zl),
		close:      db.Close,
	}, nil
}
