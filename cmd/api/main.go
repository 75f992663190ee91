package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/itsshubhpandey/LaunchPad/config"
	"github.com/itsshubhpandey/LaunchPad/internal/bootstrap"
	cronjob "github.com/itsshubhpandey/LaunchPad/internal/launchpad/cron"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/repository"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/service"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/swap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var pool *pgxpool.Pool
	var repo repository.ProjectRepository
	if cfg.Database.DSN != "" {
		pool, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()
		repo = repository.NewPostgresProjectRepository(pool)
	} else {
		log.Println("DB_DSN not set, using in-memory project store")
		repo = repository.NewMemoryProjectRepository()
	}

	var rdb *redis.Client
	var cache *repository.QuoteCache
	if cfg.Redis.Addr != "" {
		rdb, err = bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		cache = repository.NewQuoteCache(rdb)
	} else {
		log.Println("REDIS_ADDR not set, quote caching disabled")
	}

	exchange := swap.NewClient(cfg.Exchange.BaseURL, cfg.Exchange.RequestsPerSecond)
	launchpad := service.NewLaunchpadService(repo, exchange, cache)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "launchpad-api",
		Version:     cfg.App.Version,
		DB:          pool,
		Redis:       rdb,
		Launchpad:   launchpad,
	})

	if cache != nil {
		scheduler := cronjob.NewScheduler(launchpad)
		scheduler.Start()
		defer scheduler.Stop()
	}

	addr := ":" + cfg.Server.Port
	log.Printf("launchpad api listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
