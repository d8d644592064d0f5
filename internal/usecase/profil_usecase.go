package usecase

import (
	"context"
	"fmt"

	"go-profile-backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type profilUsecase struct {
	*entityUsecase[*domain.Profil]
	repo domain.ProfilRepository
}

// NewProfilUsecase creates a new profil usecase
func NewProfilUsecase(
	repo domain.ProfilRepository,
	index domain.SearchIndex[*domain.Profil],
	validate *validator.Validate,
	log *zap.Logger,
) domain.ProfilUsecase {
	return &profilUsecase{
		entityUsecase: newEntityUsecase[*domain.Profil](domain.ProfilEntityName, repo, index, validate, log),
		repo:          repo,
	}
}

// GetByUserID returns the profil owned by userID, or nil when the user has none
func (uc *profilUsecase) GetByUserID(ctx context.Context, userID int64) (*domain.Profil, error) {
	uc.log.Debug("request to get by user id", zap.Int64("user_id", userID))
	profil, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profil by user %d: %w", userID, err)
	}
	return profil, nil
}
