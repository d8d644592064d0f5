package usecase

import (
	"go-profile-backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// NewSkillUsecase creates a new skill usecase
func NewSkillUsecase(
	repo domain.SkillRepository,
	index domain.SearchIndex[*domain.Skill],
	validate *validator.Validate,
	log *zap.Logger,
) domain.SkillUsecase {
	return newEntityUsecase[*domain.Skill](domain.SkillEntityName, repo, index, validate, log)
}
