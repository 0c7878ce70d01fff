package models

import "time"

type UserRole string

const (
	RoleClient       UserRole = "client"
	RolePhotographer UserRole = "photographer"
	RoleVideographer UserRole = "videographer"
	RoleEditor       UserRole = "editor"
	RoleAdmin        UserRole = "admin"
)

// IsBusiness reports whether the role belongs to the business directory.
// Every role except "client" is listed there.
func (r UserRole) IsBusiness() bool {
	return r != RoleClient
}

type User struct {
	ID           uint64   `json:"id"`
	Username     string   `json:"username"`
	Password     string   `json:"-"`
	Role         UserRole `json:"role"`
	BusinessName string   `json:"business_name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Rating       int      `json:"rating"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Website      string   `json:"website,omitempty"`
}

// UserPatch enumerates the mutable profile fields. Nil fields are left
// unchanged by an update; the username and password are not patchable
// through the profile endpoint.
type UserPatch struct {
	Role         *UserRole `json:"role" binding:"omitempty,oneof=client photographer videographer editor admin"`
	BusinessName *string   `json:"business_name"`
	Description  *string   `json:"description"`
	Rating       *int      `json:"rating" binding:"omitempty,min=0,max=5"`
	Address      *string   `json:"address"`
	Phone        *string   `json:"phone" binding:"omitempty,intlphone"`
	Email        *string   `json:"email" binding:"omitempty,email"`
	Website      *string   `json:"website" binding:"omitempty,url"`
}

type ForumPost struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
}

type ForumReply struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	UserID    uint64    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type InquiryStatus string

const (
	InquiryStatusPending InquiryStatus = "pending"
)

type BusinessInquiry struct {
	ID         uint64        `json:"id"`
	FromUserID uint64        `json:"from_user_id"`
	ToUserID   uint64        `json:"to_user_id"`
	Message    string        `json:"message"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

type Chat struct {
	ID         uint64    `json:"id"`
	FromUserID uint64    `json:"from_user_id"`
	ToUserID   uint64    `json:"to_user_id"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type Portfolio struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
