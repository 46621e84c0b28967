package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mecanica_gestao/internal/adapter/http/handlers"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/adapter/http/routes"
	"mecanica_gestao/internal/adapter/persistence/postgres"
	"mecanica_gestao/internal/adapter/persistence/repository"
	"mecanica_gestao/internal/audit"
	"mecanica_gestao/internal/infrastructure/auth"
	"mecanica_gestao/internal/infrastructure/config"
	"mecanica_gestao/internal/infrastructure/database"
	"mecanica_gestao/internal/infrastructure/export"
	"mecanica_gestao/internal/infrastructure/metrics"
	"mecanica_gestao/internal/infrastructure/notifications"
	"mecanica_gestao/internal/infrastructure/payments"
	"mecanica_gestao/internal/infrastructure/storage"
	"mecanica_gestao/internal/session"
	"mecanica_gestao/internal/usecase"
	"mecanica_gestao/internal/usecase/interfaces"
	"mecanica_gestao/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Mecânica Gestão API
// @version         1.0
// @description     Workshop management console API: customers, budgets, service orders and finance.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("[app] startup failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.Default()

	pool, err := database.NewPostgresPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	if !cfg.App.IsProduction() {
		if err := database.EnsureTables(ctx, ddb, cfg.AWS); err != nil {
			log.Warn().Err(err).Msg("[app] could not ensure dynamodb tables")
		}
	}

	// Repositories
	receivableRepo := postgres.NewReceivableRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	serviceOrderRepo := postgres.NewServiceOrderRepository(pool, receivableRepo)
	payableRepo := postgres.NewPayableRepository(pool)
	commissionRepo := postgres.NewCommissionRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	accountRepo := postgres.NewUserAccountRepository(pool)
	rpc := postgres.NewBackendRPC(pool, m)
	auditRepo := repository.NewAuditLogDynamoRepository(ddb, cfg.AWS.AuditLogTable)
	chargeRepo := repository.NewPaymentChargeDynamoRepository(ddb, cfg.AWS.ChargesTable)

	auditLogger := audit.NewLogger(auditRepo, audit.Config{
		QueueSize:    cfg.Audit.QueueSize,
		MaxAttempts:  cfg.Audit.MaxAttempts,
		RetryBackoff: cfg.Audit.RetryBackoff,
		Metrics:      m,
	})

	// Auth and sessions
	tokens, err := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		return err
	}
	authBackend := auth.NewBackend(accountRepo, tokens, auth.NewBroadcaster(), auth.Config{})
	sessions := session.NewStore(authBackend, permissionRepo)

	// Outbound integrations
	var objectStorage interfaces.IObjectStorage = storage.Disabled{}
	gcs, err := storage.NewGCSStorage(ctx, cfg.Storage)
	switch {
	case err == nil:
		objectStorage = gcs
		defer gcs.Close()
	case errors.Is(err, storage.ErrStorageDisabled):
		log.Info().Msg("[app] object storage disabled; avatar upload unavailable")
	default:
		log.Warn().Err(err).Msg("[app] object storage not configured")
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Warn().Err(err).Msg("[app] Mercado Pago gateway not configured")
	} else {
		gateway = mp
	}

	emailSender := notifications.NewSimulatedEmailSender(cfg.Notify.EmailFrom)
	whatsapp := notifications.NewWhatsAppLinker(cfg.Notify.DefaultPhoneRegion)

	// Use cases
	customerUC := usecase.NewCustomerUseCase(customerRepo, vehicleRepo, auditLogger)
	budgetUC := usecase.NewBudgetUseCase(budgetRepo, stockRepo, rpc, auditLogger)
	serviceOrderUC := usecase.NewServiceOrderUseCase(serviceOrderRepo, customerRepo, rpc, auditLogger,
		whatsapp, emailSender, export.NewServiceOrderPDF(cfg.App.ShopName))
	receivableUC := usecase.NewReceivableUseCase(receivableRepo, chargeRepo, customerRepo, gateway, auditLogger,
		export.NewReceivablesXLSX())
	payableUC := usecase.NewPayableUseCase(payableRepo, commissionRepo, auditLogger)
	dashboardUC := usecase.NewDashboardUseCase(rpc)
	userUC := usecase.NewUserUseCase(authBackend, objectStorage, emailSender, auditRepo, auditLogger,
		cfg.App.ConsoleURL+"/reset-password")

	authLimiter, err := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimit)
	if err != nil {
		return err
	}

	router := routes.NewRouter(routes.Handlers{
		Auth:          handlers.NewAuthHandler(sessions, userUC),
		Customers:     handlers.NewCustomerHandler(customerUC),
		Budgets:       handlers.NewBudgetHandler(budgetUC),
		ServiceOrders: handlers.NewServiceOrderHandler(serviceOrderUC),
		Receivables:   handlers.NewReceivableHandler(receivableUC, cfg.Payments.Mock),
		Payables:      handlers.NewPayableHandler(payableUC),
		Dashboard:     handlers.NewDashboardHandler(dashboardUC),
		Users:         handlers.NewUserHandler(userUC),
	}, routes.Options{
		Sessions:    sessions,
		Metrics:     m,
		CORSOrigins: cfg.HTTP.CORSAllowedOrigins,
		AuthLimiter: authLimiter,
	})

	go sweepOverdue(ctx, receivableUC, cfg.App.OverdueSweep)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.App.Env).Msg("[app] http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("[app] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("[app] http shutdown failed")
	}
	sessions.Close()
	if err := auditLogger.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Int64("dropped", auditLogger.Dropped()).Msg("[app] audit queue not drained")
	}
	return nil
}

// sweepOverdue flags past-due receivables at startup and then on every tick.
func sweepOverdue(ctx context.Context, uc usecase.IReceivableUseCase, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		n, err := uc.RefreshOverdue(ctx, time.Now())
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("[receivable][sweep] overdue refresh failed")
		case n > 0:
			log.Info().Int64("count", n).Msg("[receivable][sweep] marked overdue")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
