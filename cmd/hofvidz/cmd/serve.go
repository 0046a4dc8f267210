package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/api"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/api/handlers"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/config"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/engine"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/store"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/youtube"
	"github.com/RaviKishore94/hofvidz-3.0project/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	skipMigrations bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the web server and title backfill scheduler",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on startup")
	rootCmd.AddCommand(serveCmd)
}

// redisPinger reports Redis reachability to the readiness check.
type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if !skipMigrations {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	quota := youtube.NewQuotaLimiter(
		cfg.YouTube.RateLimit.PerSecond,
		cfg.YouTube.RateLimit.Burst,
		cfg.YouTube.RateLimit.DailyUnits,
	)
	dataOpts := []youtube.DataOption{
		youtube.WithQuota(quota),
		youtube.WithHTTPClient(&http.Client{Timeout: cfg.YouTube.Timeout}),
	}
	if cfg.YouTube.BaseURL != "" {
		dataOpts = append(dataOpts, youtube.WithBaseURL(cfg.YouTube.BaseURL))
	}

	var yt youtube.API = youtube.NewDataClient(cfg.YouTube.APIKey, dataOpts...)
	var pingers []handlers.Pinger

	if cfg.Cache.Enabled() {
		opts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			return fmt.Errorf("parsing cache.redis_url: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		yt = youtube.NewCachedClient(yt, rdb,
			youtube.WithCacheTTL(cfg.Cache.TTL),
			youtube.WithCacheLogger(logger.Component(log, "cache")),
		)
		pingers = append(pingers, redisPinger{rdb: rdb})
		log.Info("search cache enabled", "addr", opts.Addr, "ttl", cfg.Cache.TTL)
	}

	eng := engine.NewEngine(st, yt,
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithMaxResults(cfg.YouTube.MaxResults),
		engine.WithBackfillBatch(cfg.Schedule.BackfillBatch),
	)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.BackfillInterval, logger.Component(log, "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	e, err := api.NewRouter(api.Deps{
		Log:     logger.Component(log, "http"),
		Store:   st,
		Engine:  eng,
		Quota:   quota,
		Pingers: pingers,
		Version: Version,
	})
	if err != nil {
		return err
	}
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", "addr", addr, "version", Version)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		return err
	}

	log.Info("server stopped")
	return nil
}
