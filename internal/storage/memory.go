package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/wedplan/marketplace-api/internal/models"
)

// Compile-time assertion that MemoryStore satisfies the full contract.
var _ Store = (*MemoryStore)(nil)

type counters struct {
	users      uint64
	posts      uint64
	replies    uint64
	inquiries  uint64
	chats      uint64
	portfolios uint64
}

// MemoryStore is the in-memory implementation of Store. All entity maps
// and ID counters are guarded by a single RWMutex; IDs increase
// monotonically per kind and are never reused, even after deletions.
type MemoryStore struct {
	mu sync.RWMutex

	users      map[uint64]models.User
	posts      map[uint64]models.ForumPost
	replies    map[uint64]models.ForumReply
	inquiries  map[uint64]models.BusinessInquiry
	chats      map[uint64]models.Chat
	portfolios map[uint64]models.Portfolio

	// repliesByPost indexes reply IDs by parent post so a cascade delete
	// touches only the matched replies.
	repliesByPost map[uint64]map[uint64]struct{}

	counters counters
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[uint64]models.User),
		posts:         make(map[uint64]models.ForumPost),
		replies:       make(map[uint64]models.ForumReply),
		inquiries:     make(map[uint64]models.BusinessInquiry),
		chats:         make(map[uint64]models.Chat),
		portfolios:    make(map[uint64]models.Portfolio),
		repliesByPost: make(map[uint64]map[uint64]struct{}),
	}
}

// CreateUser assigns the next user ID, defaults the rating to 0 and inserts
// the user. Fails with ErrUsernameTaken when the username already exists.
func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
	}

	s.counters.users++
	user.ID = s.counters.users
	user.Rating = 0

	s.users[user.ID] = *user
	return nil
}

// GetUser finds a user by ID.
func (s *MemoryStore) GetUser(id uint64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByUsername finds a user by username.
func (s *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateUser applies the non-nil patch fields onto the stored user. Fields
// absent from the patch keep their prior values.
func (s *MemoryStore) UpdateUser(id uint64, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > 5) {
		return nil, ErrInvalidRating
	}

	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.BusinessName != nil {
		user.BusinessName = *patch.BusinessName
	}
	if patch.Description != nil {
		user.Description = *patch.Description
	}
	if patch.Rating != nil {
		user.Rating = *patch.Rating
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Website != nil {
		user.Website = *patch.Website
	}

	s.users[id] = user
	return &user, nil
}

// DeleteUser removes the user and cascades to every record referencing
// them, so no stored record is left with a dangling user reference.
func (s *MemoryStore) DeleteUser(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)

	for postID, post := range s.posts {
		if post.UserID == id {
			s.deletePostLocked(postID)
		}
	}
	for replyID, reply := range s.replies {
		if reply.UserID == id {
			s.deleteReplyLocked(replyID, reply.PostID)
		}
	}
	for inquiryID, inquiry := range s.inquiries {
		if inquiry.FromUserID == id || inquiry.ToUserID == id {
			delete(s.inquiries, inquiryID)
		}
	}
	for chatID, chat := range s.chats {
		if chat.FromUserID == id || chat.ToUserID == id {
			delete(s.chats, chatID)
		}
	}
	for portfolioID, portfolio := range s.portfolios {
		if portfolio.UserID == id {
			delete(s.portfolios, portfolioID)
		}
	}
	return nil
}

// ListBusinesses returns every user whose role is not "client".
func (s *MemoryStore) ListBusinesses() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	businesses := make([]models.User, 0)
	for _, user := range s.users {
		if user.Role.IsBusiness() {
			businesses = append(businesses, user)
		}
	}
	sort.Slice(businesses, func(i, j int) bool { return businesses[i].ID < businesses[j].ID })
	return businesses, nil
}

// CreateForumPost inserts a post. Fails with ErrForeignKey when the owner
// does not exist.
func (s *MemoryStore) CreateForumPost(post *models.ForumPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[post.UserID]; !ok {
		return ErrForeignKey
	}

	s.counters.posts++
	post.ID = s.counters.posts
	post.CreatedAt = time.Now()

	s.posts[post.ID] = *post
	s.repliesByPost[post.ID] = make(map[uint64]struct{})
	return nil
}

// GetForumPost finds a post by ID.
func (s *MemoryStore) GetForumPost(id uint64) (*models.ForumPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

// ListForumPosts returns all posts.
func (s *MemoryStore) ListForumPosts() ([]models.ForumPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.ForumPost, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

// DeleteForumPost removes the post and exactly the replies whose PostID
// matches. Deleting an absent post is a no-op.
func (s *MemoryStore) DeleteForumPost(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return nil
	}
	s.deletePostLocked(id)
	return nil
}

func (s *MemoryStore) deletePostLocked(id uint64) {
	for replyID := range s.repliesByPost[id] {
		delete(s.replies, replyID)
	}
	delete(s.repliesByPost, id)
	delete(s.posts, id)
}

func (s *MemoryStore) deleteReplyLocked(id, postID uint64) {
	delete(s.replies, id)
	if index, ok := s.repliesByPost[postID]; ok {
		delete(index, id)
	}
}

// CreateForumReply inserts a reply. Fails with ErrForeignKey when either
// the parent post or the author does not exist.
func (s *MemoryStore) CreateForumReply(reply *models.ForumReply) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[reply.PostID]; !ok {
		return ErrForeignKey
	}
	if _, ok := s.users[reply.UserID]; !ok {
		return ErrForeignKey
	}

	s.counters.replies++
	reply.ID = s.counters.replies
	reply.CreatedAt = time.Now()

	s.replies[reply.ID] = *reply
	s.repliesByPost[reply.PostID][reply.ID] = struct{}{}
	return nil
}

// ListForumReplies returns the replies to one post.
func (s *MemoryStore) ListForumReplies(postID uint64) ([]models.ForumReply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	replies := make([]models.ForumReply, 0, len(s.repliesByPost[postID]))
	for replyID := range s.repliesByPost[postID] {
		replies = append(replies, s.replies[replyID])
	}
	sort.Slice(replies, func(i, j int) bool { return replies[i].ID < replies[j].ID })
	return replies, nil
}

// CreateInquiry inserts an inquiry with status "pending" unless one was
// given. Fails with ErrForeignKey when either endpoint does not exist.
func (s *MemoryStore) CreateInquiry(inquiry *models.BusinessInquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[inquiry.FromUserID]; !ok {
		return ErrForeignKey
	}
	if _, ok := s.users[inquiry.ToUserID]; !ok {
		return ErrForeignKey
	}

	s.counters.inquiries++
	inquiry.ID = s.counters.inquiries
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusPending
	}
	inquiry.CreatedAt = time.Now()

	s.inquiries[inquiry.ID] = *inquiry
	return nil
}

// ListInquiriesByUser returns every inquiry where the user is sender or
// recipient.
func (s *MemoryStore) ListInquiriesByUser(userID uint64) ([]models.BusinessInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inquiries := make([]models.BusinessInquiry, 0)
	for _, inquiry := range s.inquiries {
		if inquiry.FromUserID == userID || inquiry.ToUserID == userID {
			inquiries = append(inquiries, inquiry)
		}
	}
	sort.Slice(inquiries, func(i, j int) bool { return inquiries[i].ID < inquiries[j].ID })
	return inquiries, nil
}

// CreateChat inserts an unread chat message. Fails with ErrForeignKey when
// either endpoint does not exist.
func (s *MemoryStore) CreateChat(chat *models.Chat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[chat.FromUserID]; !ok {
		return ErrForeignKey
	}
	if _, ok := s.users[chat.ToUserID]; !ok {
		return ErrForeignKey
	}

	s.counters.chats++
	chat.ID = s.counters.chats
	chat.IsRead = false
	chat.CreatedAt = time.Now()

	s.chats[chat.ID] = *chat
	return nil
}

// GetChat finds a chat message by ID.
func (s *MemoryStore) GetChat(id uint64) (*models.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chat, ok := s.chats[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &chat, nil
}

// ListChatsBetween returns the messages exchanged between two users, in
// both directions.
func (s *MemoryStore) ListChatsBetween(userID, otherID uint64) ([]models.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chats := make([]models.Chat, 0)
	for _, chat := range s.chats {
		sent := chat.FromUserID == userID && chat.ToUserID == otherID
		received := chat.FromUserID == otherID && chat.ToUserID == userID
		if sent || received {
			chats = append(chats, chat)
		}
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i].ID < chats[j].ID })
	return chats, nil
}

// MarkChatRead sets IsRead on the chat. Marking an absent chat is a no-op.
func (s *MemoryStore) MarkChatRead(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, ok := s.chats[id]
	if !ok {
		return nil
	}
	chat.IsRead = true
	s.chats[id] = chat
	return nil
}

// CreatePortfolio inserts a portfolio. Fails with ErrForeignKey when the
// owner does not exist.
func (s *MemoryStore) CreatePortfolio(portfolio *models.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[portfolio.UserID]; !ok {
		return ErrForeignKey
	}

	s.counters.portfolios++
	portfolio.ID = s.counters.portfolios
	portfolio.CreatedAt = time.Now()

	s.portfolios[portfolio.ID] = *portfolio
	return nil
}

// ListPortfoliosByUser returns the portfolios owned by one user.
func (s *MemoryStore) ListPortfoliosByUser(userID uint64) ([]models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	portfolios := make([]models.Portfolio, 0)
	for _, portfolio := range s.portfolios {
		if portfolio.UserID == userID {
			portfolios = append(portfolios, portfolio)
		}
	}
	sort.Slice(portfolios, func(i, j int) bool { return portfolios[i].ID < portfolios[j].ID })
	return portfolios, nil
}
