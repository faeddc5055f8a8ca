package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullah3034/portfolio-api/internal/config"
	"github.com/abdullah3034/portfolio-api/internal/tokens"
	"github.com/abdullah3034/portfolio-api/internal/users"
	"github.com/abdullah3034/portfolio-api/pkg/validation"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler issues access tokens for the admin account.
type AuthHandler struct {
	cfg      *config.Config
	usersSvc *users.Service
}

// RegisterAuth mounts login (public) and me (token required).
func RegisterAuth(rg *gin.RouterGroup, cfg *config.Config, svc *users.Service, auth gin.HandlerFunc) {
	h := &AuthHandler{cfg: cfg, usersSvc: svc}
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.GET("/me", auth, h.Me)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if errs := validation.Struct(req); errs != nil {
		validationFailed(c, errs)
		return
	}
	u, err := h.usersSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		serverError(c, err)
		return
	}
	token, err := tokens.GenerateAccessToken(h.cfg.JWT.Secret, u, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims, _ := c.Get("claims")
	cm, ok := claims.(map[string]interface{})
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
		return
	}
	sub, _ := cm["sub"].(string)
	u, err := h.usersSvc.GetByID(c.Request.Context(), sub)
	if err != nil {
		serverError(c, err)
		return
	}
	if u == nil {
		notFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
