package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	v1 "go-profile-backend/internal/delivery/http/v1"
	"go-profile-backend/internal/usecase"
	"go-profile-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Info("Starting profile backend", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.profilIndex.IsPersistent() {
		// memory-only indexes start empty
		if err := a.reindex(ctx); err != nil {
			return err
		}
	}

	health := map[string]usecase.Pinger{
		"database":     a.pool,
		"profil_index": a.profilIndex,
		"skill_index":  a.skillIndex,
	}
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			log.Warn("Redis unavailable, rate limiting falls back to memory", zap.Error(err))
		} else {
			defer redis.Close()
			health["redis"] = redis.Pinger{}
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := v1.NewRouter(v1.RouterDeps{
		ProfilUC: a.profilUC,
		SkillUC:  a.skillUC,
		HealthUC: usecase.NewHealthUsecase(health),
		Redis:    redis.Client(),
		Config:   cfg,
		Log:      log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful Shutdown
	quit, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Listen failed", zap.Error(err))
			return err
		}
	case <-quit.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("Server exiting")
	return nil
}
