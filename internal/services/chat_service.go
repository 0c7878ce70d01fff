package services

import (
	"errors"
	"fmt"

	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/storage"
)

var ErrNotChatParticipant = errors.New("only a chat participant can mark it as read")

// ChatService handles direct messages between two users.
type ChatService struct {
	chats    storage.ChatStore
	users    storage.UserStore
	notifier Notifier
}

// NewChatService creates a new ChatService.
func NewChatService(chats storage.ChatStore, users storage.UserStore, notifier Notifier) *ChatService {
	return &ChatService{
		chats:    chats,
		users:    users,
		notifier: notifier,
	}
}

// Send creates an unread chat message and notifies the recipient if they
// are connected.
func (s *ChatService) Send(fromUserID, toUserID uint64, message string) (*models.Chat, error) {
	if _, err := s.users.GetUser(toUserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	chat := &models.Chat{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
	}

	if err := s.chats.CreateChat(chat); err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Notify(toUserID, map[string]interface{}{
			"type": "chat",
			"chat": chat,
		})
	}

	return chat, nil
}

// Conversation returns the messages exchanged between the caller and
// another user, both directions, in ascending ID order.
func (s *ChatService) Conversation(userID, otherID uint64) ([]models.Chat, error) {
	chats, err := s.chats.ListChatsBetween(userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return chats, nil
}

// MarkRead marks a chat as read. Marking an absent chat is a no-op; a
// caller who is not a participant is rejected.
func (s *ChatService) MarkRead(callerID, chatID uint64) error {
	chat, err := s.chats.GetChat(chatID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find chat: %w", err)
	}

	if chat.FromUserID != callerID && chat.ToUserID != callerID {
		return ErrNotChatParticipant
	}

	if err := s.chats.MarkChatRead(chatID); err != nil {
		return fmt.Errorf("failed to mark chat as read: %w", err)
	}
	return nil
}
