package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/config"
	"github.com/jthmssse/saisonnales-app-v2/internal/database"
	httpapi "github.com/jthmssse/saisonnales-app-v2/internal/http"
	"github.com/jthmssse/saisonnales-app-v2/internal/logger"
	"github.com/jthmssse/saisonnales-app-v2/internal/repository"
	"github.com/jthmssse/saisonnales-app-v2/internal/service"
	"github.com/jthmssse/saisonnales-app-v2/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "saisonnale-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Backend selection: Postgres when configured and reachable, Redis
	// otherwise. Both hold the same serialized payloads.
	var kv store.KV
	var db *sql.DB
	var redisClient *redis.Client
	if cfg.Store.Backend == "postgres" {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			pg := store.NewPostgresKV(d)
			if err := pg.Init(ctx); err != nil {
				log.Warn("failed to initialize postgres state table, falling back to redis", zap.Error(err))
				_ = d.Close()
			} else {
				db = d
				kv = pg
				log.Info("using postgres state store")
			}
		} else {
			log.Warn("postgres configured but connection failed, falling back to redis", zap.Error(err))
		}
	}
	if kv == nil {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = store.NewRedisKV(redisClient)
		log.Info("using redis state store", zap.String("addr", cfg.Redis.Addr))
	}

	residentStore := repository.NewResidentStore(kv, log)
	residentStore.Load(ctx)
	commStore := repository.NewCommunicationStore(kv, log)
	commStore.Load(ctx)

	relay := service.NewRelayClient(cfg.Relay, log)
	if relay == nil {
		log.Info("reservation relay disabled")
	}

	residentService := service.NewResidentService(residentStore, relay, cfg.Facility.TotalRooms, log)
	dashboardService := service.NewDashboardService(residentStore, cfg.Facility, log)

	router := httpapi.NewRouter(log)
	router.RegisterRoutes(
		httpapi.NewResidentHandler(residentService, log),
		httpapi.NewDashboardHandler(dashboardService, log),
		httpapi.NewCommunicationHandler(commStore, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case <-errCh:
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
