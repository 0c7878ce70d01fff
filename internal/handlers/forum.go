package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/wedplan/marketplace-api/internal/errors"
	"github.com/wedplan/marketplace-api/internal/middleware"
	"github.com/wedplan/marketplace-api/internal/services"
)

// ForumHandler coordinates forum HTTP handlers.
type ForumHandler struct {
	forumService *services.ForumService
}

// NewForumHandler creates a new ForumHandler.
func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{
		forumService: forumService,
	}
}

// ListPosts returns all forum posts.
func (h *ForumHandler) ListPosts(c *gin.Context) {
	posts, err := h.forumService.ListPosts()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost creates a forum post owned by the authenticated user.
func (h *ForumHandler) CreatePost(c *gin.Context) {
	type CreatePostRequest struct {
		Title    string `json:"title" binding:"required"`
		Content  string `json:"content" binding:"required"`
		IsPinned bool   `json:"is_pinned"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := h.forumService.CreatePost(services.CreatePostInput{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		respondForumError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListReplies returns the replies to one post.
func (h *ForumHandler) ListReplies(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	replies, err := h.forumService.ListReplies(postID)
	if err != nil {
		respondForumError(c, err)
		return
	}

	c.JSON(http.StatusOK, replies)
}

// CreateReply creates a reply to an existing post.
func (h *ForumHandler) CreateReply(c *gin.Context) {
	type CreateReplyRequest struct {
		Content string `json:"content" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	reply, err := h.forumService.CreateReply(userID, postID, req.Content)
	if err != nil {
		respondForumError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

// DeletePost deletes a post owned by the authenticated user, cascading to
// its replies.
func (h *ForumHandler) DeletePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	if err := h.forumService.DeletePost(userID, postID); err != nil {
		respondForumError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondForumError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotPostOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
