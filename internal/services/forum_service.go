package services

import (
	"errors"
	"fmt"

	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/storage"
)

var (
	ErrPostNotFound = errors.New("forum post not found")
	ErrNotPostOwner = errors.New("only the post owner can delete it")
)

// ForumService handles forum business logic.
type ForumService struct {
	forum storage.ForumStore
}

// NewForumService creates a new ForumService.
func NewForumService(forum storage.ForumStore) *ForumService {
	return &ForumService{
		forum: forum,
	}
}

// CreatePostInput represents input for creating a forum post.
type CreatePostInput struct {
	UserID   uint64
	Title    string
	Content  string
	IsPinned bool
}

// CreatePost creates a forum post owned by the given user.
func (s *ForumService) CreatePost(input CreatePostInput) (*models.ForumPost, error) {
	post := &models.ForumPost{
		UserID:   input.UserID,
		Title:    input.Title,
		Content:  input.Content,
		IsPinned: input.IsPinned,
	}

	if err := s.forum.CreateForumPost(post); err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create forum post: %w", err)
	}
	return post, nil
}

// ListPosts returns all forum posts in ascending ID order.
func (s *ForumService) ListPosts() ([]models.ForumPost, error) {
	posts, err := s.forum.ListForumPosts()
	if err != nil {
		return nil, fmt.Errorf("failed to list forum posts: %w", err)
	}
	return posts, nil
}

// CreateReply creates a reply against an existing post.
func (s *ForumService) CreateReply(userID, postID uint64, content string) (*models.ForumReply, error) {
	if _, err := s.forum.GetForumPost(postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find forum post: %w", err)
	}

	reply := &models.ForumReply{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}

	if err := s.forum.CreateForumReply(reply); err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			// The post existed above, so re-check which reference broke:
			// the author may have been deleted while their session lived.
			if _, perr := s.forum.GetForumPost(postID); perr != nil {
				return nil, ErrPostNotFound
			}
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create forum reply: %w", err)
	}
	return reply, nil
}

// ListReplies returns the replies to one post in ascending ID order.
func (s *ForumService) ListReplies(postID uint64) ([]models.ForumReply, error) {
	if _, err := s.forum.GetForumPost(postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find forum post: %w", err)
	}

	replies, err := s.forum.ListForumReplies(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forum replies: %w", err)
	}
	return replies, nil
}

// DeletePost deletes a post and all of its replies. Existence is checked
// before ownership so callers can distinguish 404 from 403.
func (s *ForumService) DeletePost(callerID, postID uint64) error {
	post, err := s.forum.GetForumPost(postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to find forum post: %w", err)
	}

	if post.UserID != callerID {
		return ErrNotPostOwner
	}

	if err := s.forum.DeleteForumPost(postID); err != nil {
		return fmt.Errorf("failed to delete forum post: %w", err)
	}
	return nil
}
