package v1

import (
	"fmt"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// EntityHandler serves the REST resource of one entity kind:
//
//	POST   /<plural>            create, 201 + Location
//	PUT    /<plural>            update (creates when the body has no id)
//	GET    /<plural>            list all
//	GET    /<plural>/:id        get one, 404 when absent
//	DELETE /<plural>/:id        delete, always 200
//	GET    /_search/<plural>    full-text search over ?query=
type EntityHandler[E domain.Entity] struct {
	uc        domain.EntityUsecase[E]
	alerts    response.Alerts
	basePath  string
	newEntity func() E
}

// NewEntityHandler registers the routes for uc under api, e.g. plural "skills"
func NewEntityHandler[E domain.Entity](
	api *gin.RouterGroup,
	uc domain.EntityUsecase[E],
	alerts response.Alerts,
	plural string,
	newEntity func() E,
) *EntityHandler[E] {
	h := &EntityHandler[E]{
		uc:        uc,
		alerts:    alerts,
		basePath:  joinPath(api.BasePath(), plural),
		newEntity: newEntity,
	}

	resource := api.Group("/" + plural)
	{
		resource.POST("", h.Create)
		resource.PUT("", h.Update)
		resource.GET("", h.List)
		resource.GET("/:id", h.Get)
		resource.DELETE("/:id", h.Delete)
	}
	api.GET("/_search/"+plural, h.Search)

	return h
}

func (h *EntityHandler[E]) Create(c *gin.Context) {
	entity, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.uc.Create(c.Request.Context(), entity)
	if err != nil {
		c.Error(err)
		return
	}
	h.created(c, result)
}

func (h *EntityHandler[E]) Update(c *gin.Context) {
	entity, ok := h.bind(c)
	if !ok {
		return
	}

	result, created, err := h.uc.Update(c.Request.Context(), entity)
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		h.created(c, result)
		return
	}

	h.alerts.EntityUpdated(c, h.uc.Name(), domain.IDString(result))
	c.JSON(http.StatusOK, result)
}

func (h *EntityHandler[E]) List(c *gin.Context) {
	items, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *EntityHandler[E]) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	entity, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *EntityHandler[E]) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	h.alerts.EntityDeleted(c, h.uc.Name(), strconv.FormatInt(id, 10))
	c.Status(http.StatusOK)
}

func (h *EntityHandler[E]) Search(c *gin.Context) {
	items, err := h.uc.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// created answers 201 with the Location of the new resource
func (h *EntityHandler[E]) created(c *gin.Context, result E) {
	id := domain.IDString(result)
	c.Header("Location", h.basePath+"/"+id)
	h.alerts.EntityCreated(c, h.uc.Name(), id)
	c.JSON(http.StatusCreated, result)
}

func (h *EntityHandler[E]) bind(c *gin.Context) (E, bool) {
	entity := h.newEntity()
	if err := c.ShouldBindJSON(entity); err != nil {
		c.Error(apperror.BadRequest(fmt.Sprintf("Invalid %s payload: %v", h.uc.Name(), err)))
		return entity, false
	}
	return entity, true
}

func (h *EntityHandler[E]) pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest(fmt.Sprintf("Invalid %s ID", h.uc.Name())))
		return 0, false
	}
	return id, true
}

func joinPath(base, plural string) string {
	if base == "/" {
		base = ""
	}
	return base + "/" + plural
}
