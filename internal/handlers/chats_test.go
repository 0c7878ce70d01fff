package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/services"
	"github.com/wedplan/marketplace-api/internal/storage"
)

func setupChatTestEnv(t *testing.T) (*storage.MemoryStore, *ChatHandler) {
	t.Helper()

	store := storage.NewMemoryStore()
	return store, NewChatHandler(services.NewChatService(store, store, nil))
}

func createChatTestUser(t *testing.T, store *storage.MemoryStore, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Password: "hashedpassword",
		Role:     models.RoleClient,
	}
	require.NoError(t, store.CreateUser(user))
	return user
}

func TestChatHandler_SendAndConversation(t *testing.T) {
	store, handler := setupChatTestEnv(t)

	alice := createChatTestUser(t, store, "alice")
	bob := createChatTestUser(t, store, "bob")

	body, _ := json.Marshal(map[string]interface{}{
		"to_user_id": bob.ID,
		"message":    "hello",
	})
	c, w := authedJSONContext(http.MethodPost, "/api/chats", body, alice.ID)
	handler.Send(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var chat models.Chat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chat))
	require.False(t, chat.IsRead)
	require.Equal(t, alice.ID, chat.FromUserID)

	// The recipient sees the conversation from their side.
	c, w = authedJSONContext(http.MethodGet, "/api/chats/1", nil, bob.ID)
	c.Params = gin.Params{{Key: "userId", Value: "1"}}
	handler.Conversation(c)

	require.Equal(t, http.StatusOK, w.Code)

	var conversation []models.Chat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conversation))
	require.Len(t, conversation, 1)
	require.Equal(t, chat.ID, conversation[0].ID)
}

func TestChatHandler_SendToUnknownUser(t *testing.T) {
	store, handler := setupChatTestEnv(t)
	alice := createChatTestUser(t, store, "alice")

	body := []byte(`{"to_user_id": 99, "message": "hello"}`)
	c, w := authedJSONContext(http.MethodPost, "/api/chats", body, alice.ID)
	handler.Send(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatHandler_MarkReadByParticipant(t *testing.T) {
	store, handler := setupChatTestEnv(t)

	alice := createChatTestUser(t, store, "alice")
	bob := createChatTestUser(t, store, "bob")

	chat := &models.Chat{FromUserID: alice.ID, ToUserID: bob.ID, Message: "hi"}
	require.NoError(t, store.CreateChat(chat))

	c, w := authedJSONContext(http.MethodPost, "/api/chats/1/read", nil, bob.ID)
	c.Params = gin.Params{{Key: "chatId", Value: "1"}}
	handler.MarkRead(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)

	stored, err := store.GetChat(chat.ID)
	require.NoError(t, err)
	require.True(t, stored.IsRead)
}

func TestChatHandler_MarkReadByOutsiderForbidden(t *testing.T) {
	store, handler := setupChatTestEnv(t)

	alice := createChatTestUser(t, store, "alice")
	bob := createChatTestUser(t, store, "bob")
	eve := createChatTestUser(t, store, "eve")

	chat := &models.Chat{FromUserID: alice.ID, ToUserID: bob.ID, Message: "hi"}
	require.NoError(t, store.CreateChat(chat))

	c, w := authedJSONContext(http.MethodPost, "/api/chats/1/read", nil, eve.ID)
	c.Params = gin.Params{{Key: "chatId", Value: "1"}}
	handler.MarkRead(c)

	require.Equal(t, http.StatusForbidden, w.Code)

	stored, err := store.GetChat(chat.ID)
	require.NoError(t, err)
	require.False(t, stored.IsRead)
}
