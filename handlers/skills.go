package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abdullah3034/portfolio-api/internal/skills"
	"github.com/abdullah3034/portfolio-api/pkg/validation"
)

type CreateSkillRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Category string `json:"category" validate:"required,oneof=languages frontend backend databases tools languages_spoken"`
	Level    int    `json:"level" validate:"gte=0,lte=100"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}

type UpdateSkillRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=languages frontend backend databases tools languages_spoken"`
	Level    *int    `json:"level,omitempty" validate:"omitempty,gte=0,lte=100"`
	Icon     *string `json:"icon,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

// SkillsHandler serves the skills CRUD surface.
type SkillsHandler struct {
	repo skills.Repository
}

// RegisterSkills mounts the skill routes. Reads are public; mutations
// require the auth gate.
func RegisterSkills(rg *gin.RouterGroup, repo skills.Repository, auth gin.HandlerFunc) {
	h := &SkillsHandler{repo: repo}
	g := rg.Group("/skills")
	g.GET("", h.List)
	g.GET("/categories", h.Categories)
	g.POST("", auth, h.Create)
	g.PUT("/:id", auth, h.Update)
	g.DELETE("/:id", auth, h.Delete)
}

func (h *SkillsHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SkillsHandler) Categories(c *gin.Context) {
	cats, err := h.repo.Categories(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *SkillsHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}
	s := &skills.Skill{
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
		Icon:     req.Icon,
		Order:    req.Order,
	}
	if err := h.repo.Create(c.Request.Context(), s); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SkillsHandler) Update(c *gin.Context) {
	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}
	patch := skills.Patch{
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
		Icon:     req.Icon,
		Order:    req.Order,
	}
	updated, err := h.repo.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, skills.ErrNotFound) {
			notFound(c, "Skill not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SkillsHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, skills.ErrNotFound) {
			notFound(c, "Skill not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
