package foods

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"annadata-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes mounts the endpoints that never call a model.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/food-image", h.imageURL)
}

// RegisterAIRoutes mounts the model-backed endpoints; rg is expected to carry
// the AI rate limit.
func (h *Handler) RegisterAIRoutes(rg *gin.RouterGroup) {
	rg.POST("/foods/analyze", h.analyze)
	rg.POST("/food-image/generate", h.generate)
}

func (h *Handler) imageURL(c *gin.Context) {
	food := strings.TrimSpace(c.Query("food"))
	if food == "" {
		respond.Legacy(c, http.StatusBadRequest, "Food name is required", nil)
		return
	}
	respond.OK(c, gin.H{"success": true, "imageUrl": ImageURL(food)})
}

type analyzeRequest struct {
	Query string `json:"query"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	result, err := h.Svc.Analyze(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "query is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze food", nil)
		return
	}
	c.Set("aiSource", result.Source)
	respond.OK(c, result)
}

type generateRequest struct {
	FoodName    string `json:"foodName"`
	Description string `json:"description"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Legacy(c, http.StatusBadRequest, "Food name is required", nil)
		return
	}
	out, err := h.Svc.GenerateImage(c.Request.Context(), req.FoodName, req.Description)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Legacy(c, http.StatusBadRequest, "Food name is required", nil)
			return
		}
		respond.Legacy(c, http.StatusInternalServerError, "Error generating food image", err)
		return
	}
	c.Set("aiSource", out.Source)
	respond.OK(c, out)
}
