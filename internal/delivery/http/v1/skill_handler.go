package v1

import (
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// NewSkillHandler registers the skill resource
func NewSkillHandler(api *gin.RouterGroup, skillUC domain.SkillUsecase, alerts response.Alerts) *EntityHandler[*domain.Skill] {
	return NewEntityHandler[*domain.Skill](api, skillUC, alerts, "skills", func() *domain.Skill {
		return new(domain.Skill)
	})
}
