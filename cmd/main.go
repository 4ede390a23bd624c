package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gopkg.in/gomail.v2"

	_ "github.com/sbilibin2017/gw-payment-intake/docs"
	"github.com/sbilibin2017/gw-payment-intake/internal/config"
	"github.com/sbilibin2017/gw-payment-intake/internal/facades"
	"github.com/sbilibin2017/gw-payment-intake/internal/handlers"
	"github.com/sbilibin2017/gw-payment-intake/internal/health"
	"github.com/sbilibin2017/gw-payment-intake/internal/jwt"
	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/middlewares"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
	"github.com/sbilibin2017/gw-payment-intake/internal/payments"
	"github.com/sbilibin2017/gw-payment-intake/internal/repositories"
	"github.com/sbilibin2017/gw-payment-intake/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const healthInterval = 10 * time.Second

// @title gw-payment-intake API
// @version 1.0.0
// @description Payment intake service: method validation, simulated approval, transaction history and reports
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// app holds the services the HTTP router is built from.
type app struct {
	db      *sqlx.DB
	tokener middlewares.Tokener
	auth    *services.AuthService
	payment *services.PaymentService
	report  *services.ReportService
}

// run initializes the logger, database, Redis, Kafka, mail and the HTTP and
// gRPC health servers. It blocks until ctx is done or a signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	var logOpts []logger.Option
	if cfg.App.LogFile != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.App.LogFile))
	}
	if err := logger.Initialize(cfg.App.LogLevel, logOpts...); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Optional Kafka publishing
	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	// Optional email notifications
	var notifier services.PaymentNotifier
	if cfg.SMTP.Host != "" {
		dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		notifier = facades.NewPaymentMailer(dialer, cfg.SMTP.From, cfg.SMTP.To)
		logger.Log.Infow("Email notifications enabled", "host", cfg.SMTP.Host, "to", cfg.SMTP.To)
	}

	// Optional flat-file ledger
	var ledger services.TransactionWriter
	if cfg.Payments.LedgerFile != "" {
		ledger = repositories.NewFileLedger(cfg.Payments.LedgerFile)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Exp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db)
	txnReadRepo := repositories.NewTransactionReadRepository(db)
	summaryCache := repositories.NewSummaryCacheRepository(rdb, cfg.Redis.TTL)

	// Initialize services
	authService, err := services.NewAuthService(userReadRepo, userWriteRepo, tokens, cfg.Admin.MasterPassword)
	if err != nil {
		return fmt.Errorf("auth service: %w", err)
	}
	if cfg.Admin.DefaultLogin != "" {
		if err := authService.EnsureDefaultAdmin(ctx, cfg.Admin.DefaultLogin, cfg.Admin.DefaultPassword); err != nil {
			return fmt.Errorf("default admin: %w", err)
		}
	}

	processor := payments.NewProcessor(
		payments.WithDelay(cfg.Payments.Delay),
		payments.WithDecider(payments.WeightedDecider(nil, cfg.Payments.ApprovePercent)),
	)
	paymentService := services.NewPaymentService(processor, txnWriteRepo, ledger, notifier, kafkaWriter).
		WithSummaryInvalidator(summaryCache)
	reportService := services.NewReportService(txnReadRepo, summaryCache)

	r := newRouter(app{
		db:      db,
		tokener: tokens,
		auth:    authService,
		payment: paymentService,
		report:  reportService,
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr())),
	))

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// gRPC health service
	grpcServer := grpc.NewServer()
	healthServer := grpchealth.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	checker := health.NewChecker(healthServer, healthInterval)
	checker.Add("postgres", db.PingContext)
	checker.Add("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })

	lis, err := net.Listen("tcp", cfg.App.GRPCAddr())
	if err != nil {
		return fmt.Errorf("grpc listen failed: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go checker.Run(ctxShutdown)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", cfg.App.GRPCAddr())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("grpc server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("server failed", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}

// newRouter mounts the public, authenticated and admin routes.
func newRouter(a app) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(a.auth))
	r.Post("/login", handlers.NewLoginHandler(a.auth))

	// Master password protected routes
	r.Post("/admin/register", handlers.NewAdminRegisterHandler(a.auth))
	r.With(middlewares.TxMiddleware(a.db)).
		Post("/admin/reset-password", handlers.NewAdminResetPasswordHandler(a.auth))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(a.tokener))
		r.Post("/payments", handlers.NewPaymentHandler(a.payment))
		r.Get("/transactions", handlers.NewTransactionsHandler(a.report))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireRole(models.RoleAdmin))
			r.Get("/admin/admins", handlers.NewListAdminsHandler(a.auth))
			r.Get("/reports/summary", handlers.NewSummaryHandler(a.report))
			r.Get("/reports/export", handlers.NewExportHandler(a.report))
		})
	})

	return r
}
