package memstub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontcraft/chat-core/internal/config"
	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/internal/repo/memstub"
)

func newStub() *memstub.Stub {
	return memstub.New(&config.Config{
		User: config.UserConfig{ID: "user-1", Name: "You"},
		// no latency in tests
		Stub: config.StubConfig{LatencyScale: 0},
	})
}

func TestSeededData(t *testing.T) {
	t.Parallel()
	s := newStub()
	ctx := t.Context()

	chats, err := s.GetChats(ctx)
	require.NoError(t, err)
	require.Len(t, chats, 3)
	assert.Equal(t, "FontCraft Assistant", chats[0].Name)
	assert.Equal(t, 1, chats[0].UnreadCount)
	require.NotNil(t, chats[0].LastMessage())

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 6)
	assert.Equal(t, models.UserID("user-1"), s.CurrentUser().ID)
}

func TestGetChat(t *testing.T) {
	t.Parallel()
	s := newStub()

	chat, err := s.GetChat(t.Context(), "chat-2")
	require.NoError(t, err)
	assert.Equal(t, "Typography Expert", chat.Name)

	_, err = s.GetChat(t.Context(), "chat-999")
	assert.True(t, models.IsNotFound(err))
}

func TestCreateChat(t *testing.T) {
	t.Parallel()
	s := newStub()
	ctx := t.Context()

	chat, err := s.CreateChat(ctx, models.CreateChatRequest{
		Name:           "Design Team",
		Kind:           models.ChatKindGroup,
		ParticipantIDs: []models.UserID{"user-3", "user-4"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, chat.ID)
	assert.Equal(t, models.ChatKindGroup, chat.Kind)
	assert.Empty(t, chat.Messages)
	assert.Zero(t, chat.UnreadCount)
	// current user plus the two resolved participants
	assert.Len(t, chat.Participants, 3)
	assert.Equal(t, models.UserID("user-1"), chat.Participants[0].ID)

	// new chat is served first on the next load
	chats, err := s.GetChats(ctx)
	require.NoError(t, err)
	assert.Equal(t, chat.ID, chats[0].ID)
}

func TestSendMessage(t *testing.T) {
	t.Parallel()
	s := newStub()

	reply := models.MessageID("msg-bot-1")
	msg, err := s.SendMessage(t.Context(), "chat-1", models.SendMessageRequest{
		Content:   "Hi",
		ReplyToID: &reply,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, models.ChatID("chat-1"), msg.ChatID)
	assert.Equal(t, models.UserID("user-1"), msg.SenderID)
	assert.Equal(t, "Hi", msg.Content)
	require.NotNil(t, msg.ReplyToID)
	assert.Equal(t, reply, *msg.ReplyToID)

	_, err = s.SendMessage(t.Context(), "chat-999", models.SendMessageRequest{Content: "Hi"})
	assert.True(t, models.IsNotFound(err))
}

func TestDeleteChat(t *testing.T) {
	t.Parallel()
	s := newStub()
	ctx := t.Context()

	require.NoError(t, s.DeleteChat(ctx, "chat-1"))
	chats, err := s.GetChats(ctx)
	require.NoError(t, err)
	assert.Len(t, chats, 2)

	// deleting an unknown chat is idempotent
	assert.NoError(t, s.DeleteChat(ctx, "chat-1"))
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()
	s := memstub.New(&config.Config{
		User: config.UserConfig{ID: "user-1", Name: "You"},
		Stub: config.StubConfig{LatencyScale: 1},
	})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := s.GetChats(ctx)
	require.Error(t, err)
	assert.True(t, models.IsTransport(err))
}
