package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "ticket_checkout/docs"
	"ticket_checkout/internal/adapter/http/handlers"
	repository2 "ticket_checkout/internal/adapter/persistence/repository"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/infrastructure/config"
	"ticket_checkout/internal/infrastructure/database"
	"ticket_checkout/internal/infrastructure/notification"
	"ticket_checkout/internal/infrastructure/payments"
	"ticket_checkout/internal/usecase"
	"ticket_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := buildApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer cleanup()

	router := NewRouter(app)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	go func() {
		log.Printf("[http] listening addr=%s store=%s gateway_mock=%t", srv.Addr, cfg.Store.Kind, cfg.Gateway.Mock)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[http] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Checkout.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] checkout sessions did not stop in time err=%v", err)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] server shutdown err=%v", err)
	}
}

// App holds the wired use cases served over HTTP.
type App struct {
	Registrations *usecase.RegistrationUseCase
	Checkout      *usecase.CheckoutUseCase
	Phones        mobilemoney.Normalizer
}

// NewRouter builds the Gin engine with middlewares, docs and /v1 routes.
func NewRouter(app App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	checkoutHandler := handlers.NewCheckoutHandler(app.Checkout, app.Phones)
	registrationHandler := handlers.NewRegistrationHandler(app.Registrations, app.Phones)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, registrationHandler)
	return router
}

// buildApp wires stores, gateway, notifier and use cases from configuration.
func buildApp(ctx context.Context, cfg config.Config) (App, func(), error) {
	repo, cleanup, err := newRegistrationRepository(ctx, cfg.Store)
	if err != nil {
		return App{}, nil, err
	}

	gateway := newPaymentGateway(cfg.Gateway)
	normalizer := mobilemoney.NewNormalizer(cfg.Gateway.CountryCode).WithDefaultNetwork(cfg.Gateway.DefaultNetwork)
	notifier := newNotifier(cfg.Notifier, normalizer)
	clock := usecase.SystemClock()

	intake := usecase.NewRegistrationUseCase(repo, normalizer, clock)
	initiation := usecase.NewPaymentInitiationUseCase(gateway, normalizer, clock)
	poller := usecase.NewConfirmationPoller(repo, gateway, clock, usecase.PollerConfig{
		InitialWait: cfg.Confirmation.InitialWait,
		RetryWait:   cfg.Confirmation.RetryWait,
		MaxRounds:   cfg.Confirmation.MaxRounds,
	})
	checkout := usecase.NewCheckoutUseCase(intake, initiation, poller, repo, notifier)

	return App{Registrations: intake, Checkout: checkout, Phones: normalizer}, cleanup, nil
}

func newRegistrationRepository(ctx context.Context, store config.StoreConfig) (interfaces.IRegistrationRepository, func(), error) {
	switch store.Kind {
	case config.StorePostgres:
		pool, err := database.NewPostgresPool(ctx, store.Postgres)
		if err != nil {
			return nil, nil, err
		}
		repo := repository2.NewRegistrationPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	case config.StoreMemory:
		log.Printf("[database] using in-memory registration store")
		return repository2.NewRegistrationMemoryRepository(), func() {}, nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, store)
		if err != nil {
			return nil, nil, err
		}
		return repository2.NewRegistrationDynamoRepository(ddb, store.RegistrationsTable), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown registration store %q", store.Kind)
}

func newPaymentGateway(cfg config.GatewayConfig) interfaces.IPaymentGateway {
	if cfg.Mock {
		return payments.NewMockGateway()
	}
	gw, err := payments.NewMobileMoneyGateway(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		// Checkouts of paid tickets will fail to start; free tickets still work.
		log.Printf("Payment gateway not configured: %v", err)
		return nil
	}
	return gw
}

func newNotifier(cfg config.NotifierConfig, phones mobilemoney.Normalizer) interfaces.INotifier {
	if cfg.Kind == config.NotifierMailtrap {
		n, err := notification.NewMailtrapNotifier(phones, cfg.MailtrapURL, cfg.MailtrapToken, cfg.FromEmail, cfg.FromName)
		if err == nil {
			return n
		}
		log.Printf("Mailtrap notifier not configured, falling back to log: %v", err)
	}
	return notification.NewLogNotifier(phones)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
