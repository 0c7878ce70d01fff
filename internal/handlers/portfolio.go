package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/wedplan/marketplace-api/internal/errors"
	"github.com/wedplan/marketplace-api/internal/middleware"
	"github.com/wedplan/marketplace-api/internal/services"
)

// PortfolioHandler coordinates portfolio HTTP handlers.
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Create creates a portfolio owned by the authenticated user.
func (h *PortfolioHandler) Create(c *gin.Context) {
	type CreatePortfolioRequest struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		ImageURLs   []string `json:"image_urls" binding:"omitempty,dive,url"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	portfolio, err := h.portfolioService.Create(services.CreatePortfolioInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, portfolio)
}

// ListByUser returns the portfolios owned by the user in the path.
func (h *PortfolioHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	portfolios, err := h.portfolioService.ListByUser(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, portfolios)
}
