package v1

import (
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfilHandler struct {
	*EntityHandler[*domain.Profil]
	profilUC domain.ProfilUsecase
}

// NewProfilHandler registers the profil resource plus the lookup by owning user
func NewProfilHandler(api *gin.RouterGroup, profilUC domain.ProfilUsecase, alerts response.Alerts) *ProfilHandler {
	handler := &ProfilHandler{
		EntityHandler: NewEntityHandler[*domain.Profil](api, profilUC, alerts, "profils", func() *domain.Profil {
			return new(domain.Profil)
		}),
		profilUC: profilUC,
	}

	api.GET("/profils/user/:userId", handler.GetByUserID)
	return handler
}

// GetByUserID answers 200 with the profil, or 200 with null when the user has none
func (h *ProfilHandler) GetByUserID(c *gin.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}

	profil, err := h.profilUC.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if profil == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, profil)
}
