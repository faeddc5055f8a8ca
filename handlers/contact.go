package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdullah3034/portfolio-api/internal/contact"
	"github.com/abdullah3034/portfolio-api/internal/mailer"
	"github.com/abdullah3034/portfolio-api/pkg/logger"
	"github.com/abdullah3034/portfolio-api/pkg/metrics"
	"github.com/abdullah3034/portfolio-api/pkg/validation"
)

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

func (r *CreateContactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}

// ContactHandler serves the public contact form and the authenticated inbox.
type ContactHandler struct {
	repo     contact.Repository
	notifier mailer.Notifier
}

// RegisterContact mounts the contact routes. Create is public; the inbox
// operations require the auth gate.
func RegisterContact(rg *gin.RouterGroup, repo contact.Repository, notifier mailer.Notifier, auth gin.HandlerFunc) {
	h := &ContactHandler{repo: repo, notifier: notifier}
	g := rg.Group("/contact")
	g.POST("", h.Create)
	g.GET("", auth, h.List)
	g.PUT("/:id/status", auth, h.UpdateStatus)
	g.DELETE("/:id", auth, h.Delete)
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	req.normalize()
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}

	msg := &contact.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.repo.Create(c.Request.Context(), msg); err != nil {
		serverError(c, err)
		return
	}
	metrics.ContactMessages.Inc()

	// Fire-and-forget notification: the message is already durable, so a
	// degraded mail path never changes the client-visible outcome.
	if h.notifier != nil {
		go h.dispatchNotification(*msg)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully!",
		"contact": gin.H{
			"id":        msg.ID,
			"name":      msg.Name,
			"email":     msg.Email,
			"subject":   msg.Subject,
			"createdAt": msg.CreatedAt,
		},
	})
}

func (h *ContactHandler) dispatchNotification(msg contact.Contact) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := h.notifier.Notify(ctx, &msg); err != nil {
		logger.Errorf("contact notification failed: %v", err)
		metrics.NotificationsFailed.Inc()
		return
	}
	metrics.NotificationsSent.Inc()
}

func (h *ContactHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	opts := contact.ListOptions{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}
	opts.Normalize()

	list, total, err := h.repo.List(c.Request.Context(), opts)
	if err != nil {
		serverError(c, err)
		return
	}
	totalPages := (total + int64(opts.Limit) - 1) / int64(opts.Limit)
	c.JSON(http.StatusOK, gin.H{
		"contacts":    list,
		"totalPages":  totalPages,
		"currentPage": opts.Page,
		"total":       total,
	})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}
	updated, err := h.repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			notFound(c, "Contact not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			notFound(c, "Contact not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
