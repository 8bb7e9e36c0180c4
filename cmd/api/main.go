package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"beerhall/internal/cartstore"
	"beerhall/internal/config"
	"beerhall/internal/db"
	"beerhall/internal/domain"
	"beerhall/internal/httpserver"
	beerrepo "beerhall/internal/repository/beer"
	brewerrepo "beerhall/internal/repository/brewer"
	customerrepo "beerhall/internal/repository/customer"
	locationrepo "beerhall/internal/repository/location"
	orderrepo "beerhall/internal/repository/order"
	"beerhall/internal/session"
	cartsvc "beerhall/internal/service/cart"
	catalogsvc "beerhall/internal/service/catalog"
	checkoutsvc "beerhall/internal/service/checkout"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var sessions session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer client.Close()
		sessions = session.NewRedis(client, cfg.SessionTTL)
		logger.Printf("session store: redis %s", cfg.RedisAddr)
	} else {
		sessions = session.NewMemory()
		logger.Printf("session store: in-memory")
	}

	beerRepo := beerrepo.NewPostgres(dbpool, logger)
	brewerRepo := brewerrepo.NewPostgres(dbpool)
	locationRepo := locationrepo.NewPostgres(dbpool)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	carts := cartstore.New(sessions, beerRepo, logger)
	policy := domain.DefaultDeliveryPolicy
	policy.MinLeadDays = cfg.MinDeliveryLeadDays

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:   catalogsvc.New(beerRepo, brewerRepo, locationRepo),
		CartSvc:      cartsvc.New(carts, beerRepo),
		CheckoutSvc:  checkoutsvc.New(carts, customerRepo, orderRepo, locationRepo, policy, logger),
		CustomerRepo: customerRepo,
		OrderRepo:    orderRepo,
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
