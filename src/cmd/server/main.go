package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/payment-orchestrator/src/internal/adapter/fx"
	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/controller"
	"github.com/api-sage/payment-orchestrator/src/internal/adapter/http/router"
	"github.com/api-sage/payment-orchestrator/src/internal/adapter/pns"
	"github.com/api-sage/payment-orchestrator/src/internal/adapter/repository/memory"
	"github.com/api-sage/payment-orchestrator/src/internal/adapter/repository/postgres"
	"github.com/api-sage/payment-orchestrator/src/internal/config"
	"github.com/api-sage/payment-orchestrator/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(startupCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(startupCtx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	transactionRepo := postgres.NewTransactionRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	paymentDetailsRepo := postgres.NewPaymentDetailsRepository(db)
	bankDetailsRepo := postgres.NewBankDetailsRepository(db)
	currencyRepo := memory.NewCurrencyRepository()

	fxClient := fx.NewClient(cfg.FXServiceURL)
	pnsClient := pns.NewClient(cfg.PNSServiceURL)

	lookupService := services.NewLookupService(paymentDetailsRepo, bankDetailsRepo, accountRepo)
	conversionService := services.NewConversionService(currencyRepo, fxClient)
	transactionService := services.NewTransactionService(transactionRepo, lookupService, conversionService, pnsClient)
	accountService := services.NewAccountService(accountRepo)

	mux := router.New(
		controller.NewTransactionController(transactionService),
		controller.NewAccountController(accountService),
	)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
