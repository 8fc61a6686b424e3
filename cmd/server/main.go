package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/airlinehq/airline-api/internal/api"
	"github.com/airlinehq/airline-api/internal/core/ports"
	"github.com/airlinehq/airline-api/internal/core/service"
	"github.com/airlinehq/airline-api/internal/infrastructure/config"
	"github.com/airlinehq/airline-api/internal/infrastructure/db/mysql"
	redisdb "github.com/airlinehq/airline-api/internal/infrastructure/db/redis"
	"github.com/airlinehq/airline-api/internal/token"
	"github.com/airlinehq/airline-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting airline-api")

	db, err := mysql.Connect(ctx, mysql.Config{DSN: cfg.MySQL.DSN})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	log.Info().Msg("mysql connected")

	var routeCache ports.RouteCache
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		routeCache = redisdb.NewRouteCache(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	} else {
		log.Info().Msg("redis disabled, route cache off")
	}

	codec, err := token.NewCodec(cfg.JWTSecret, token.ParseTTL(cfg.JWTExpiresIn))
	if err != nil {
		return err
	}

	userRepo := mysql.NewUserRepository(db)
	routeRepo := mysql.NewRouteRepository(db)

	svcs := api.Services{
		Auth:   service.NewAuthService(userRepo, codec, log),
		Users:  service.NewUserService(userRepo, log),
		Routes: service.NewRouteService(routeRepo, routeCache, log),
	}

	e := api.NewRouter(svcs, codec, db, rdb, log)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
