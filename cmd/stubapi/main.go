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

	"survey_client/internal/auth"
	authrepo "survey_client/internal/auth/repository"
	apphttp "survey_client/internal/http"
	"survey_client/internal/http/router"
	"survey_client/internal/surveys"
	surveyrepo "survey_client/internal/surveys/repository"
	"survey_client/migrations"
	"survey_client/platform/config"
	"survey_client/platform/db"
	"survey_client/platform/logger"
	"survey_client/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting stub api", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed, err := surveyrepo.DefaultSeed()
	if err != nil {
		log.Error("failed to load survey seed", "error", err)
		os.Exit(1)
	}

	app := &apphttp.App{Config: cfg, Logger: log}
	val := validator.New()

	var (
		accounts    authrepo.AccountRepository
		surveyStore surveyrepo.SurveyRepository
	)

	if cfg.GetDatabaseURL() == "" {
		log.Warn("DATABASE_URL not configured; using in-memory stores")
		accounts = authrepo.NewMemory()
		surveyStore = surveyrepo.NewMemory(seed...)
	} else {
		pool, err := connectDatabase(ctx, cfg, log)
		if err != nil {
			log.Error("failed to prepare database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		repo := surveyrepo.New(pool)
		inserted, err := repo.SeedIfEmpty(ctx, seed)
		if err != nil {
			log.Error("failed to seed surveys", "error", err)
			os.Exit(1)
		}
		log.Info("database ready", "seededSurveys", inserted)

		accounts = authrepo.New(pool)
		surveyStore = repo
		app.Health = db.NewPoolAdapter(pool)
	}

	app.Modules = []apphttp.Module{
		auth.NewModule(accounts, cfg, val, log),
		surveys.NewModule(surveyStore, log),
	}

	srv := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func connectDatabase(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		return nil, err
	}

	if err := db.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", lastErr)

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
