package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"qkart/internal/config"
	"qkart/internal/db"
	"qkart/internal/httpserver"
	productrepo "qkart/internal/repository/product"
	userrepo "qkart/internal/repository/user"
	accountsvc "qkart/internal/service/account"
	authsvc "qkart/internal/service/auth"
	cartsvc "qkart/internal/service/cart"
	catalogsvc "qkart/internal/service/catalog"
	checkoutsvc "qkart/internal/service/checkout"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	sqlDB, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer sqlDB.Close()

	users := userrepo.NewSQLite(sqlDB, logger)
	products := productrepo.NewSQLite(sqlDB, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, sqlDB, httpserver.Deps{
		AuthSvc:     authsvc.New(users, cfg.JWTSecret, cfg.TokenTTL),
		CatalogSvc:  catalogsvc.New(products),
		CartSvc:     cartsvc.New(users, products),
		CheckoutSvc: checkoutsvc.New(users, products),
		AccountSvc:  accountsvc.New(users),
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
