package workouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"annadata-backend/internal/shared/server/middleware"
	"annadata-backend/internal/shared/server/respond"
	"annadata-backend/internal/users"
)

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
	rg.GET("/fitness/recommendations", h.recommendations)
}

// recommendations serves the demo profile to anonymous and cookie-only
// callers and to signed-in users who have not stored one yet.
func (h *Handler) recommendations(c *gin.Context) {
	ctx := c.Request.Context()
	var userID string
	if middleware.Verified(c) && h.Users != nil {
		user, err := h.Users.Current(ctx, middleware.UserIDFromContext(c), "")
		switch {
		case err == nil:
			userID = user.ID
		case errors.Is(err, users.ErrNotFound), errors.Is(err, users.ErrNoIdentity):
		default:
			respond.Legacy(c, http.StatusInternalServerError, "Failed to generate fitness recommendations", err)
			return
		}
	}
	rec, err := h.Svc.Recommend(ctx, userID)
	if err != nil {
		respond.Legacy(c, http.StatusInternalServerError, "Failed to generate fitness recommendations", err)
		return
	}
	respond.OK(c, rec)
}
