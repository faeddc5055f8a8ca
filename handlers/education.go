package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdullah3034/portfolio-api/internal/education"
	"github.com/abdullah3034/portfolio-api/pkg/validation"
)

type CreateEducationRequest struct {
	Institution string `json:"institution" validate:"required,min=1,max=200"`
	Degree      string `json:"degree" validate:"required,min=1,max=200"`
	Field       string `json:"field" validate:"omitempty,max=200"`
	StartDate   string `json:"startDate" validate:"required,dateish"`
	EndDate     string `json:"endDate" validate:"omitempty,dateish"`
	Current     bool   `json:"current"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Location    string `json:"location" validate:"omitempty,max=100"`
	Order       int    `json:"order"`
}

type UpdateEducationRequest struct {
	Institution *string `json:"institution,omitempty" validate:"omitempty,min=1,max=200"`
	Degree      *string `json:"degree,omitempty" validate:"omitempty,min=1,max=200"`
	Field       *string `json:"field,omitempty" validate:"omitempty,max=200"`
	StartDate   *string `json:"startDate,omitempty" validate:"omitempty,dateish"`
	EndDate     *string `json:"endDate,omitempty" validate:"omitempty,dateish"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Order       *int    `json:"order,omitempty"`
}

// EducationHandler serves the education CRUD surface.
type EducationHandler struct {
	repo education.Repository
}

// RegisterEducation mounts the education routes. Reads are public; mutations
// require the auth gate.
func RegisterEducation(rg *gin.RouterGroup, repo education.Repository, auth gin.HandlerFunc) {
	h := &EducationHandler{repo: repo}
	g := rg.Group("/education")
	g.GET("", h.List)
	g.POST("", auth, h.Create)
	g.PUT("/:id", auth, h.Update)
	g.DELETE("/:id", auth, h.Delete)
}

func (h *EducationHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	req.Institution = strings.TrimSpace(req.Institution)
	req.Degree = strings.TrimSpace(req.Degree)
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}
	// dateish already verified the formats
	start, _ := validation.ParseDate(req.StartDate)
	var end *time.Time
	if req.EndDate != "" {
		e, _ := validation.ParseDate(req.EndDate)
		end = &e
	}
	rec := &education.Education{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   start,
		EndDate:     end,
		Current:     req.Current,
		Description: req.Description,
		Location:    req.Location,
		Order:       req.Order,
	}
	if err := h.repo.Create(c.Request.Context(), rec); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *EducationHandler) Update(c *gin.Context) {
	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}
	patch := education.Patch{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		Current:     req.Current,
		Description: req.Description,
		Location:    req.Location,
		Order:       req.Order,
	}
	if req.StartDate != nil {
		s, _ := validation.ParseDate(*req.StartDate)
		patch.StartDate = &s
	}
	if req.EndDate != nil {
		e, _ := validation.ParseDate(*req.EndDate)
		patch.EndDate = &e
	}
	updated, err := h.repo.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, education.ErrNotFound) {
			notFound(c, "Education record not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, education.ErrNotFound) {
			notFound(c, "Education record not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education record deleted successfully"})
}
