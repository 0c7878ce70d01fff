package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/wedplan/marketplace-api/internal/errors"
	"github.com/wedplan/marketplace-api/internal/middleware"
	"github.com/wedplan/marketplace-api/internal/services"
)

// InquiryHandler coordinates business inquiry HTTP handlers.
type InquiryHandler struct {
	inquiryService *services.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
	}
}

// Create sends an inquiry from the authenticated user to a business.
func (h *InquiryHandler) Create(c *gin.Context) {
	type CreateInquiryRequest struct {
		ToUserID uint64 `json:"to_user_id" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	inquiry, err := h.inquiryService.Send(userID, req.ToUserID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNotABusiness):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, inquiry)
}

// List returns every inquiry the authenticated user sent or received.
func (h *InquiryHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	inquiries, err := h.inquiryService.ListForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, inquiries)
}
