package main

import (
	"context"
	"fmt"

	"go-profile-backend/internal/database/migration"
	"go-profile-backend/internal/domain"
	"go-profile-backend/internal/repository/postgres"
	"go-profile-backend/internal/repository/search"
	"go-profile-backend/internal/usecase"
	"go-profile-backend/pkg/database"
	"go-profile-backend/pkg/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// app holds the stores and usecases shared by every command
type app struct {
	pool        *pgxpool.Pool
	profilIndex *search.Index[*domain.Profil]
	skillIndex  *search.Index[*domain.Skill]

	profilUC domain.ProfilUsecase
	skillUC  domain.SkillUsecase
}

func openApp(ctx context.Context) (*app, error) {
	if cfg.AutoMigrate {
		if err := runMigrations(ctx); err != nil {
			return nil, err
		}
	}

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{}, log.Named("database"))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	profilIndex, err := search.NewProfilIndex(cfg.SearchIndexPath)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("open profil index: %w", err)
	}
	skillIndex, err := search.NewSkillIndex(cfg.SearchIndexPath)
	if err != nil {
		_ = profilIndex.Close()
		pool.Close()
		return nil, fmt.Errorf("open skill index: %w", err)
	}

	validate := validation.New()
	ucLog := log.Named("usecase")

	return &app{
		pool:        pool,
		profilIndex: profilIndex,
		skillIndex:  skillIndex,
		profilUC:    usecase.NewProfilUsecase(postgres.NewProfilRepository(pool), profilIndex, validate, ucLog),
		skillUC:     usecase.NewSkillUsecase(postgres.NewSkillRepository(pool), skillIndex, validate, ucLog),
	}, nil
}

// reindex rebuilds both search indexes from the record store
func (a *app) reindex(ctx context.Context) error {
	n, err := a.profilUC.Reindex(ctx)
	if err != nil {
		return fmt.Errorf("reindex profils: %w", err)
	}
	log.Info("Search index rebuilt", zap.String("entity", domain.ProfilEntityName), zap.Int("documents", n))

	n, err = a.skillUC.Reindex(ctx)
	if err != nil {
		return fmt.Errorf("reindex skills: %w", err)
	}
	log.Info("Search index rebuilt", zap.String("entity", domain.SkillEntityName), zap.Int("documents", n))
	return nil
}

func (a *app) Close() {
	if err := a.profilIndex.Close(); err != nil {
		log.Warn("Failed to close profil index", zap.Error(err))
	}
	if err := a.skillIndex.Close(); err != nil {
		log.Warn("Failed to close skill index", zap.Error(err))
	}
	a.pool.Close()
}

func runMigrations(ctx context.Context) error {
	db, err := migration.Open(ctx, cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	applied, err := migration.Runner{Log: log.Named("migration")}.Run(ctx, db)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("Migrations complete", zap.Int("applied", applied))
	return nil
}
