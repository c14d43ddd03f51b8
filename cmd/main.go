package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/config"
	"github.com/THORzero9/FWR-sub000/logger"
	"github.com/THORzero9/FWR-sub000/repository"
	"github.com/THORzero9/FWR-sub000/routes"
	"github.com/THORzero9/FWR-sub000/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.Init(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("database setup failed", zap.Error(err))
	}

	users := repository.NewGormUserRepository(db)
	sessions := repository.NewGormSessionStore(db)
	items := repository.NewGormFoodItemRepository(db)
	recipes := repository.NewGormRecipeRepository(db)
	reference := repository.NewGormReferenceRepository(db)

	ctx := context.Background()
	if err := recipes.SeedIfEmpty(ctx, services.SampleRecipes()); err != nil {
		log.Fatal("recipe seed failed", zap.Error(err))
	}
	if err := reference.SeedIfEmpty(ctx, services.SampleFoodBanks(), services.SampleNearbyUsers()); err != nil {
		log.Fatal("reference seed failed", zap.Error(err))
	}

	router := routes.SetupRouter(routes.Deps{
		Cfg:       cfg,
		Log:       log,
		Auth:      services.NewAuthService(users, sessions, log),
		Items:     services.NewFoodItemService(items),
		Recipes:   services.NewRecipeService(recipes),
		Stats:     services.NewStatsService(items),
		Reference: reference,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	stopPurge := startSessionPurge(sessions, log)

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	stopPurge()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}

// startSessionPurge sweeps expired sessions hourly so the table stays small.
func startSessionPurge(sessions *repository.GormSessionStore, log *zap.Logger) func() {
	ticker := time.NewTicker(time.Hour)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				removed, err := sessions.PurgeExpired(context.Background())
				if err != nil {
					log.Warn("session purge failed", zap.Error(err))
				} else if removed > 0 {
					log.Info("purged expired sessions", zap.Int64("count", removed))
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}
