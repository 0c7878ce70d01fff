package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/wedplan/marketplace-api/internal/errors"
	"github.com/wedplan/marketplace-api/internal/middleware"
	"github.com/wedplan/marketplace-api/internal/services"
)

// ChatHandler coordinates chat HTTP handlers.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Send creates a chat message from the authenticated user.
func (h *ChatHandler) Send(c *gin.Context) {
	type SendChatRequest struct {
		ToUserID uint64 `json:"to_user_id" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req SendChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	chat, err := h.chatService.Send(userID, req.ToUserID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, chat)
}

// Conversation returns the messages exchanged with the user in the path.
func (h *ChatHandler) Conversation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	otherID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	chats, err := h.chatService.Conversation(userID, otherID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, chats)
}

// MarkRead marks a chat message as read. Marking an absent chat succeeds
// as a no-op.
func (h *ChatHandler) MarkRead(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	chatID, ok := parseIDParam(c, "chatId")
	if !ok {
		return
	}

	if err := h.chatService.MarkRead(userID, chatID); err != nil {
		if errors.Is(err, services.ErrNotChatParticipant) {
			apierrors.Forbidden(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}
