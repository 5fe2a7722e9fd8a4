package profiles

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"annadata-backend/internal/shared/server/middleware"
	"annadata-backend/internal/shared/server/respond"
	"annadata-backend/internal/users"
)

// UserResolver maps the request identity to a stored account.
type UserResolver interface {
	Current(ctx context.Context, userID, email string) (users.User, error)
}

type Handler struct {
	Svc   *Service
	Users UserResolver
}

func NewHandler(svc *Service, resolver UserResolver) *Handler {
	return &Handler{Svc: svc, Users: resolver}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
}

func (h *Handler) get(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}
	respond.OK(c, gin.H{"profile": p})
}

func (h *Handler) put(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var p Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	saved, err := h.Svc.Save(c.Request.Context(), user.ID, p)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "profile failed validation", verr.Fields)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	respond.OK(c, gin.H{"profile": saved})
}

func (h *Handler) currentUser(c *gin.Context) (users.User, bool) {
	if h.Svc == nil || h.Users == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return users.User{}, false
	}
	// Profiles hold health data, so the unsigned email cookie is not enough.
	if !middleware.Verified(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return users.User{}, false
	}
	user, err := h.Users.Current(c.Request.Context(), middleware.UserIDFromContext(c), "")
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		case errors.Is(err, users.ErrNoIdentity):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		}
		return users.User{}, false
	}
	return user, true
}
