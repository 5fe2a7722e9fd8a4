package grocery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"annadata-backend/internal/grocery/suggestions"
	"annadata-backend/internal/profiles"
	"annadata-backend/internal/shared/server/middleware"
	"annadata-backend/internal/shared/server/respond"
	"annadata-backend/internal/users"
)

const (
	msgUnauthorized  = "Unauthorized - User not logged in"
	msgUserNotFound  = "User not found"
	msgNoProfile     = "Profile data not found"
	msgHealthFailed  = "Failed to generate health-based suggestions"
	msgSuggestFailed = "Failed to generate grocery suggestions"
	msgSuggestInput  = "Please provide current diet information or an existing grocery list."
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
	rg.GET("/grocery/health-suggestions", h.healthSuggestions)
	rg.POST("/grocery/suggest", h.suggest)
}

func (h *Handler) healthSuggestions(c *gin.Context) {
	if !middleware.Authenticated(c) || h.Users == nil {
		respond.Legacy(c, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}
	ctx := c.Request.Context()
	user, err := h.Users.Current(ctx, middleware.UserIDFromContext(c), middleware.UserEmailFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNoIdentity):
			respond.Legacy(c, http.StatusUnauthorized, msgUnauthorized, nil)
		case errors.Is(err, users.ErrNotFound):
			respond.Legacy(c, http.StatusNotFound, msgUserNotFound, nil)
		default:
			respond.Legacy(c, http.StatusInternalServerError, msgHealthFailed, err)
		}
		return
	}

	result, err := h.Svc.HealthSuggestions(ctx, user.ID, ParseExisting(c.Query("existing")))
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			respond.Legacy(c, http.StatusNotFound, msgNoProfile, nil)
			return
		}
		respond.Legacy(c, http.StatusInternalServerError, msgHealthFailed, err)
		return
	}
	respond.OK(c, result)
}

type suggestRequest struct {
	CurrentDiet  string                 `json:"currentDiet"`
	ExistingList []suggestions.ListItem `json:"existingList"`
}

func (h *Handler) suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Legacy(c, http.StatusBadRequest, msgSuggestInput, nil)
		return
	}
	out, err := h.Svc.Suggest(req.CurrentDiet, req.ExistingList)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Legacy(c, http.StatusBadRequest, msgSuggestInput, nil)
			return
		}
		respond.Legacy(c, http.StatusInternalServerError, msgSuggestFailed, err)
		return
	}
	respond.OK(c, gin.H{"suggestions": out})
}
