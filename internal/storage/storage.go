package storage

import (
	"errors"

	"github.com/wedplan/marketplace-api/internal/models"
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("storage: record not found")
	// ErrUsernameTaken is returned when creating a user with a username that already exists.
	ErrUsernameTaken = errors.New("storage: username already taken")
	// ErrForeignKey is returned when a record references another record that does not exist.
	ErrForeignKey = errors.New("storage: referenced record does not exist")
	// ErrInvalidRating is returned when a rating outside [0, 5] would be stored.
	ErrInvalidRating = errors.New("storage: rating out of range")
)

// UserStore defines the data access contract for users.
//
// All list operations across the store contract return records in
// ascending ID order.
type UserStore interface {
	// CreateUser assigns the next user ID, applies defaults and inserts the
	// user. The generated ID and defaults are written back into user.
	CreateUser(user *models.User) error

	// GetUser finds a user by ID.
	GetUser(id uint64) (*models.User, error)

	// GetUserByUsername finds a user by username.
	GetUserByUsername(username string) (*models.User, error)

	// UpdateUser applies the non-nil patch fields onto the stored user and
	// returns the updated record.
	UpdateUser(id uint64, patch models.UserPatch) (*models.User, error)

	// DeleteUser removes the user and every record referencing them: their
	// forum posts (with replies), their replies on other posts, their
	// portfolios, and all inquiries and chats they sent or received.
	DeleteUser(id uint64) error

	// ListBusinesses returns every user whose role is not "client".
	ListBusinesses() ([]models.User, error)
}

// ForumStore defines the data access contract for forum posts and replies.
type ForumStore interface {
	// CreateForumPost inserts a post after checking the owner exists.
	CreateForumPost(post *models.ForumPost) error

	// GetForumPost finds a post by ID.
	GetForumPost(id uint64) (*models.ForumPost, error)

	// ListForumPosts returns all posts.
	ListForumPosts() ([]models.ForumPost, error)

	// DeleteForumPost removes the post and every reply whose PostID matches.
	// Deleting an absent post is a no-op.
	DeleteForumPost(id uint64) error

	// CreateForumReply inserts a reply after checking both the parent post
	// and the author exist.
	CreateForumReply(reply *models.ForumReply) error

	// ListForumReplies returns the replies to one post.
	ListForumReplies(postID uint64) ([]models.ForumReply, error)
}

// InquiryStore defines the data access contract for business inquiries.
type InquiryStore interface {
	// CreateInquiry inserts an inquiry after checking both endpoints exist.
	CreateInquiry(inquiry *models.BusinessInquiry) error

	// ListInquiriesByUser returns every inquiry the user sent or received.
	ListInquiriesByUser(userID uint64) ([]models.BusinessInquiry, error)
}

// ChatStore defines the data access contract for chat messages.
type ChatStore interface {
	// CreateChat inserts a chat message after checking both endpoints exist.
	CreateChat(chat *models.Chat) error

	// GetChat finds a chat message by ID.
	GetChat(id uint64) (*models.Chat, error)

	// ListChatsBetween returns the messages exchanged between two users,
	// in both directions.
	ListChatsBetween(userID, otherID uint64) ([]models.Chat, error)

	// MarkChatRead sets IsRead on the chat. Marking an absent chat is a no-op.
	MarkChatRead(id uint64) error
}

// PortfolioStore defines the data access contract for portfolios.
type PortfolioStore interface {
	// CreatePortfolio inserts a portfolio after checking the owner exists.
	CreatePortfolio(portfolio *models.Portfolio) error

	// ListPortfoliosByUser returns the portfolios owned by one user.
	ListPortfoliosByUser(userID uint64) ([]models.Portfolio, error)
}

// Store is the full contract the service layer is written against. A
// persistence-backed implementation can be substituted without touching
// callers.
type Store interface {
	UserStore
	ForumStore
	InquiryStore
	ChatStore
	PortfolioStore
}
