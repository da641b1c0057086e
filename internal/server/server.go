// Package server boots the application: configuration, logging, database,
// cache, storage, and the HTTP server itself.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/app/routes"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/config"
	"github.com/shashiranjanraj/orderdesk/pkg/cache"
	"github.com/shashiranjanraj/orderdesk/pkg/database"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
	"github.com/shashiranjanraj/orderdesk/pkg/storage"
)

// App holds the booted application.
type App struct {
	DB     *gorm.DB
	Router *router.Router

	logCloser func()
}

// Boot loads config and connects every backing service. Redis and Mongo
// are optional; the app runs without them at reduced capability.
func Boot() (*App, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("boot: config: %w", err)
	}

	closer := attachMongoLogging()

	if err := database.Connect(); err != nil {
		return nil, fmt.Errorf("boot: database: %w", err)
	}
	db := database.DB

	if err := cache.Connect(); err != nil {
		logger.Warn("boot: redis unavailable, sessions and caching degraded", "error", err)
	}

	storage.Connect()

	users := repositories.NewUserRepository(db)
	customers := repositories.NewCustomerRepository(db)
	orders := repositories.NewOrderRepository(db)
	products := repositories.NewProductRepository(db)

	rt := routes.Register(routes.Deps{
		Auth:  services.NewAuthService(db, users, customers),
		Order: services.NewOrderService(db, orders, products, customers),
		Cust:  services.NewCustomerService(customers, orders),
		Prod:  services.NewProductService(products),
	})

	return &App{DB: db, Router: rt, logCloser: closer}, nil
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains
// in-flight requests for up to ten seconds.
func (a *App) Serve() error {
	addr := ":" + config.AppPort()

	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := srv.Shutdown(ctx)
	a.Close()
	return err
}

// Close flushes the async log pipeline.
func (a *App) Close() {
	if a.logCloser != nil {
		a.logCloser()
	}
}

// attachMongoLogging fans log records out to Mongo when LOG_MONGO_URI is
// set. The returned closer drains the buffer on shutdown.
func attachMongoLogging() func() {
	uri := config.LogMongoURI()
	if uri == "" {
		return nil
	}

	mh, err := logger.NewMongoHandler(uri, config.LogMongoDatabase(), config.LogMongoCollection())
	if err != nil {
		logger.Warn("boot: mongo log handler unavailable", "error", err)
		return nil
	}

	logger.UseHandler(logger.NewMultiHandler(logger.L.Handler(), mh))
	return mh.Close
}
