package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wedplan/marketplace-api/internal/dto"
	apierrors "github.com/wedplan/marketplace-api/internal/errors"
	"github.com/wedplan/marketplace-api/internal/services"
)

// BusinessHandler serves the public business directory.
type BusinessHandler struct {
	userService *services.UserService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(userService *services.UserService) *BusinessHandler {
	return &BusinessHandler{
		userService: userService,
	}
}

// List returns every business account (role other than "client").
func (h *BusinessHandler) List(c *gin.Context) {
	businesses, err := h.userService.ListBusinesses()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(businesses))
}
