package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdullah3034/portfolio-api/internal/projects"
	"github.com/abdullah3034/portfolio-api/pkg/validation"
)

type CreateProjectRequest struct {
	Title           string   `json:"title" validate:"required,max=100"`
	Description     string   `json:"description" validate:"required,max=500"`
	LongDescription string   `json:"longDescription" validate:"omitempty,max=1000"`
	Technologies    []string `json:"technologies"`
	GithubURL       string   `json:"githubUrl" validate:"required"`
	LiveURL         string   `json:"liveUrl"`
	Image           string   `json:"image"`
	Featured        bool     `json:"featured"`
	Order           int      `json:"order"`
}

type UpdateProjectRequest struct {
	Title           *string   `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
	LongDescription *string   `json:"longDescription,omitempty" validate:"omitempty,max=1000"`
	Technologies    *[]string `json:"technologies,omitempty"`
	GithubURL       *string   `json:"githubUrl,omitempty" validate:"omitempty,min=1"`
	LiveURL         *string   `json:"liveUrl,omitempty"`
	Image           *string   `json:"image,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
	Order           *int      `json:"order,omitempty"`
}

// ImageStore is the object-storage surface the image endpoints need.
type ImageStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// ProjectsHandler serves the projects CRUD surface plus optional image
// upload/serving when an object store is configured.
type ProjectsHandler struct {
	repo  projects.Repository
	store ImageStore
}

// RegisterProjects mounts the project routes. Reads are public; mutations
// require the auth gate. Image routes are only mounted when store is non-nil.
func RegisterProjects(rg *gin.RouterGroup, repo projects.Repository, store ImageStore, auth gin.HandlerFunc) {
	h := &ProjectsHandler{repo: repo, store: store}
	g := rg.Group("/projects")
	g.GET("", h.List)
	g.POST("", auth, h.Create)
	g.PUT("/:id", auth, h.Update)
	g.DELETE("/:id", auth, h.Delete)
	if store != nil {
		g.POST("/:id/image", auth, h.UploadImage)
		g.GET("/:id/image", h.ServeImage)
	}
}

func (h *ProjectsHandler) List(c *gin.Context) {
	var featured *bool
	if q := c.Query("featured"); q != "" {
		if v, err := strconv.ParseBool(q); err == nil {
			featured = &v
		}
	}
	list, err := h.repo.List(c.Request.Context(), featured)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ProjectsHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}
	p := &projects.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Image:           req.Image,
		Featured:        req.Featured,
		Order:           req.Order,
	}
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectsHandler) Update(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}
	patch := projects.Patch{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Image:           req.Image,
		Featured:        req.Featured,
		Order:           req.Order,
	}
	updated, err := h.repo.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			notFound(c, "Project not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProjectsHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			notFound(c, "Project not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func (h *ProjectsHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.repo.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			notFound(c, "Project not found")
			return
		}
		serverError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}
	src, err := file.Open()
	if err != nil {
		serverError(c, err)
		return
	}
	defer src.Close()

	key := "projects/" + id + "/" + path.Base(file.Filename)
	contentType := file.Header.Get("Content-Type")
	if err := h.store.Upload(c.Request.Context(), key, src, file.Size, contentType); err != nil {
		serverError(c, err)
		return
	}
	updated, err := h.repo.Update(c.Request.Context(), id, projects.Patch{Image: &key})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProjectsHandler) ServeImage(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			notFound(c, "Project not found")
			return
		}
		serverError(c, err)
		return
	}
	if p.Image == "" {
		notFound(c, "Project has no image")
		return
	}
	url, err := h.store.PresignedURL(c.Request.Context(), p.Image, 15*time.Minute)
	if err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}
