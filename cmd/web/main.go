package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chaunsagold/storefront/internal/admin"
	"github.com/chaunsagold/storefront/internal/cart"
	"github.com/chaunsagold/storefront/internal/catalog"
	"github.com/chaunsagold/storefront/internal/checkout"
	"github.com/chaunsagold/storefront/internal/concierge"
	"github.com/chaunsagold/storefront/internal/config"
	"github.com/chaunsagold/storefront/internal/httpx"
	kafkax "github.com/chaunsagold/storefront/internal/kafka"
	"github.com/chaunsagold/storefront/internal/notify"
	"github.com/chaunsagold/storefront/internal/orders"
	"github.com/chaunsagold/storefront/internal/postgres"
	"github.com/chaunsagold/storefront/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// Ledger: Postgres when configured, otherwise the JSON file document.
	var ledger orders.Ledger
	if cfg.PostgresDSN != "" {
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer db.Close()
		pg := &orders.PgLedger{DB: db}
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		ledger = pg
		logger.Info("ledger backend: postgres")
	} else {
		ledger = orders.NewFileLedger(cfg.LedgerPath)
		logger.Info("ledger backend: file", zap.String("path", cfg.LedgerPath))
	}

	adminHandler := &httpx.AdminHandler{
		Gate:    admin.NewGate(cfg.AdminUser, cfg.AdminPass),
		Ledger:  ledger,
		Service: cfg.ServiceName,
		Log:     logger,
	}
	// Redis status cache (optional)
	if cfg.RedisAddr != "" {
		r := redisx.New(cfg.RedisAddr)
		defer r.Close()
		adminHandler.Redis = r
	}

	// Event mirror (optional)
	notifiers := []notify.Notifier{
		notify.NewSheetsNotifier(cfg.SheetsWebhookURL, cfg.OrderEmail, "Chaunsa Gold Web Store", logger),
	}
	var producers []*kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		pSub := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderSubmitted, 1024, logger)
		pSub.Start(ctx)
		pSt := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderStatus, 1024, logger)
		pSt.Start(ctx)
		producers = append(producers, pSub, pSt)
		notifiers = append(notifiers, &notify.KafkaNotifier{Producer: pSub, Service: cfg.ServiceName})
		adminHandler.StatusProducer = pSt
	}

	// Concierge: fall back to the canned line when no key is configured.
	var chatClient concierge.Client = concierge.Disabled{}
	if cfg.GeminiAPIKey != "" {
		gc, err := concierge.NewGenAIClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("concierge disabled", zap.Error(err))
		} else {
			chatClient = gc
		}
	}

	svc := checkout.New(ledger, notifiers, cfg.WhatsAppNumber, cfg.OrderEmail, logger)

	router := httpx.NewRouter()
	sf := &httpx.StorefrontHandler{
		Catalog:   catalog.Seed(),
		Carts:     cart.NewSessions(),
		Checkout:  svc,
		Concierge: concierge.New(chatClient, logger),
		Log:       logger,
	}
	sf.Register(router)
	adminHandler.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		logger.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	for _, p := range producers {
		p.Close() // close inbox -> flush & close writer
	}
	cancel()
	for _, p := range producers {
		p.WaitClosed()
	}
}
