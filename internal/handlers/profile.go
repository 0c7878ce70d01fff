package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/wedplan/marketplace-api/internal/dto"
	apierrors "github.com/wedplan/marketplace-api/internal/errors"
	"github.com/wedplan/marketplace-api/internal/middleware"
	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/services"
	"github.com/wedplan/marketplace-api/internal/validation"
)

// ProfileHandler coordinates profile HTTP handlers.
type ProfileHandler struct {
	userService *services.UserService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
	}
}

// Update applies a partial patch to the authenticated user's profile.
// Unknown fields are rejected rather than silently merged.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var patch models.UserPatch
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if err := validation.Struct(&patch); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrRatingOutOfRange):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Delete removes the authenticated user's account and terminates the
// session.
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.userService.DeleteAccount(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to terminate session")
		return
	}

	c.Status(http.StatusNoContent)
}
