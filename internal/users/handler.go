package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"annadata-backend/internal/shared/server/middleware"
	"annadata-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users/sync", h.sync)
	rg.GET("/me", h.me)
}

func (h *Handler) sync(c *gin.Context) {
	var in SyncInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Legacy(c, http.StatusBadRequest, "Missing required fields", nil)
		return
	}
	if strings.TrimSpace(in.ClerkID) == "" || strings.TrimSpace(in.Email) == "" {
		respond.Legacy(c, http.StatusBadRequest, "Missing required fields", nil)
		return
	}
	user, err := h.Svc.Sync(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Legacy(c, http.StatusBadRequest, strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": "), nil)
			return
		}
		respond.Legacy(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.OK(c, gin.H{"user": user})
}

func (h *Handler) me(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	if !middleware.Verified(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	user, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c), "")
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		case errors.Is(err, ErrNoIdentity):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		}
		return
	}
	respond.OK(c, gin.H{"user": user})
}
