package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/controller"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/middleware"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/router"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/repository/memory"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/config"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/domain"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/logger"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var seedRepo domain.AccountSeedRepository = memory.NewAccountSeedRepository()
	seeds, err := seedRepo.GetAll(ctx)
	if err != nil {
		log.Fatalf("load seed accounts: %v", err)
	}
	ledger, err := domain.NewLedger(seeds...)
	if err != nil {
		log.Fatalf("build ledger: %v", err)
	}

	sessionService := services.NewSessionService(ledger, cfg.SessionIdleTimeout)
	adminService := services.NewAdminService(ledger)

	handler := router.New(
		controller.NewSessionController(sessionService),
		controller.NewAccountController(sessionService),
		controller.NewAdminController(adminService),
		middleware.BasicAuth(cfg.AdminChannelID, cfg.AdminKeyHash),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", logger.Fields{
			"addr":     cfg.HTTPAddr,
			"accounts": len(seeds),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("http server shutting down", logger.Fields{
			"totalBalance": ledger.TotalBalance().String(),
		})
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http server stopped with error", err, nil)
		os.Exit(1)
	}
	logger.Info("http server stopped", nil)
}
