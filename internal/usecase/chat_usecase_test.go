package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/internal/store"
	"github.com/fontcraft/chat-core/internal/usecase"
)

var me = models.User{ID: "user-1", DisplayName: "You", IsOnline: true}

// fakeClient implements the data access port with overridable calls.
type fakeClient struct {
	getChats    func(ctx context.Context) ([]models.Chat, error)
	createChat  func(ctx context.Context, req models.CreateChatRequest) (*models.Chat, error)
	sendMessage func(ctx context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error)
	deleteChat  func(ctx context.Context, id models.ChatID) error
	getUsers    func(ctx context.Context) ([]models.User, error)
}

func (f *fakeClient) GetChats(ctx context.Context) ([]models.Chat, error) {
	return f.getChats(ctx)
}

func (f *fakeClient) GetChat(ctx context.Context, id models.ChatID) (*models.Chat, error) {
	return nil, models.NewNotFoundError("chat %s not found", id)
}

func (f *fakeClient) CreateChat(ctx context.Context, req models.CreateChatRequest) (*models.Chat, error) {
	return f.createChat(ctx, req)
}

func (f *fakeClient) SendMessage(ctx context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error) {
	return f.sendMessage(ctx, chatID, req)
}

func (f *fakeClient) DeleteChat(ctx context.Context, id models.ChatID) error {
	return f.deleteChat(ctx, id)
}

func (f *fakeClient) GetUsers(ctx context.Context) ([]models.User, error) {
	return f.getUsers(ctx)
}

func seededChat(id string) models.Chat {
	return models.Chat{
		ID:        models.ChatID(id),
		Name:      "chat " + id,
		Kind:      models.ChatKindDirect,
		UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestLoadChats(t *testing.T) {
	t.Parallel()

	t.Run("success replaces state", func(t *testing.T) {
		st := store.New(me)
		uc := usecase.NewChatUsecase(&fakeClient{
			getChats: func(context.Context) ([]models.Chat, error) {
				return []models.Chat{seededChat("a"), seededChat("b")}, nil
			},
		}, st)

		require.NoError(t, uc.LoadChats(t.Context()))
		snap := uc.State()
		assert.False(t, snap.IsLoading)
		assert.Len(t, snap.Chats, 2)
	})

	t.Run("failure records and propagates", func(t *testing.T) {
		st := store.New(me)
		uc := usecase.NewChatUsecase(&fakeClient{
			getChats: func(context.Context) ([]models.Chat, error) {
				return nil, models.NewTransportError("get chats", errors.New("boom"))
			},
		}, st)

		err := uc.LoadChats(t.Context())
		require.Error(t, err)
		assert.True(t, models.IsTransport(err))
		snap := uc.State()
		assert.False(t, snap.IsLoading)
		assert.Contains(t, snap.LastError, "boom")
	})
}

func TestCreateChat(t *testing.T) {
	t.Parallel()

	t.Run("new chat becomes active at the head", func(t *testing.T) {
		st := store.New(me)
		created := seededChat("new")
		uc := usecase.NewChatUsecase(&fakeClient{
			getChats: func(context.Context) ([]models.Chat, error) {
				return []models.Chat{seededChat("old")}, nil
			},
			createChat: func(_ context.Context, req models.CreateChatRequest) (*models.Chat, error) {
				c := created
				c.Name = req.Name
				return &c, nil
			},
		}, st)
		require.NoError(t, uc.LoadChats(t.Context()))

		chat, err := uc.CreateChat(t.Context(), models.CreateChatRequest{
			Name: "Design Team",
			Kind: models.ChatKindGroup,
		})
		require.NoError(t, err)
		assert.Equal(t, "Design Team", chat.Name)

		snap := uc.State()
		require.NotNil(t, snap.ActiveChat)
		assert.Equal(t, chat.ID, snap.ActiveChat.ID)
		assert.Equal(t, chat.ID, snap.Chats[0].ID)
	})

	t.Run("failure records and propagates", func(t *testing.T) {
		st := store.New(me)
		uc := usecase.NewChatUsecase(&fakeClient{
			createChat: func(context.Context, models.CreateChatRequest) (*models.Chat, error) {
				return nil, models.NewValidationError("name already taken")
			},
		}, st)

		_, err := uc.CreateChat(t.Context(), models.CreateChatRequest{Name: "x", Kind: models.ChatKindDirect})
		require.Error(t, err)
		assert.True(t, models.IsValidation(err))
		assert.Equal(t, "name already taken", uc.State().LastError)
	})
}

func TestDeleteChat(t *testing.T) {
	t.Parallel()
	st := store.New(me)
	uc := usecase.NewChatUsecase(&fakeClient{
		getChats: func(context.Context) ([]models.Chat, error) {
			return []models.Chat{seededChat("a")}, nil
		},
		deleteChat: func(_ context.Context, id models.ChatID) error {
			return nil
		},
	}, st)
	require.NoError(t, uc.LoadChats(t.Context()))
	uc.SetActiveChat("a")

	require.NoError(t, uc.DeleteChat(t.Context(), "a"))
	snap := uc.State()
	assert.Empty(t, snap.Chats)
	assert.Nil(t, snap.ActiveChat)
}

func TestSendMessage(t *testing.T) {
	t.Parallel()

	newUC := func(st *store.Store, sendErr error) usecase.ChatUsecase {
		return usecase.NewChatUsecase(&fakeClient{
			getChats: func(context.Context) ([]models.Chat, error) {
				return []models.Chat{seededChat("a")}, nil
			},
			sendMessage: func(_ context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error) {
				if sendErr != nil {
					return nil, sendErr
				}
				return &models.Message{
					ID:        "m-1",
					ChatID:    chatID,
					SenderID:  me.ID,
					Content:   req.Content,
					Kind:      models.MessageKindText,
					ReplyToID: req.ReplyToID,
					CreatedAt: time.Now(),
				}, nil
			},
		}, st)
	}

	t.Run("appends without toggling the loading flag", func(t *testing.T) {
		st := store.New(me)
		uc := newUC(st, nil)
		require.NoError(t, uc.LoadChats(t.Context()))
		uc.SetActiveChat("a")

		msg, err := uc.SendMessage(t.Context(), "a", models.SendMessageRequest{Content: "Hi"})
		require.NoError(t, err)
		assert.Equal(t, "Hi", msg.Content)

		snap := uc.State()
		assert.False(t, snap.IsLoading)
		require.NotNil(t, snap.ActiveChat)
		require.NotNil(t, snap.ActiveChat.LastMessage())
		assert.Equal(t, "Hi", snap.ActiveChat.LastMessage().Content)
		assert.Zero(t, snap.ActiveChat.UnreadCount)
	})

	t.Run("sending a reply consumes the reply target", func(t *testing.T) {
		st := store.New(me)
		uc := newUC(st, nil)
		require.NoError(t, uc.LoadChats(t.Context()))
		uc.SetActiveChat("a")

		target := models.Message{ID: "m-0", ChatID: "a", SenderID: "user-2", CreatedAt: time.Now()}
		uc.ReplyToMessage(&target)
		require.NotNil(t, uc.State().ReplyTo)

		id := target.ID
		_, err := uc.SendMessage(t.Context(), "a", models.SendMessageRequest{Content: "re", ReplyToID: &id})
		require.NoError(t, err)
		assert.Nil(t, uc.State().ReplyTo)
	})

	t.Run("failure records and propagates", func(t *testing.T) {
		st := store.New(me)
		uc := newUC(st, models.NewNotFoundError("chat a not found"))
		require.NoError(t, uc.LoadChats(t.Context()))

		_, err := uc.SendMessage(t.Context(), "a", models.SendMessageRequest{Content: "Hi"})
		require.Error(t, err)
		assert.True(t, models.IsNotFound(err))
		assert.Contains(t, uc.State().LastError, "not found")
	})
}

func TestSetActiveChat(t *testing.T) {
	t.Parallel()
	st := store.New(me)
	uc := usecase.NewChatUsecase(&fakeClient{
		getChats: func(context.Context) ([]models.Chat, error) {
			chat := seededChat("a")
			chat.UnreadCount = 4
			return []models.Chat{chat}, nil
		},
	}, st)
	require.NoError(t, uc.LoadChats(t.Context()))

	target := models.Message{ID: "m-0", ChatID: "a", SenderID: "user-2", CreatedAt: time.Now()}
	uc.ReplyToMessage(&target)

	uc.SetActiveChat("a")
	snap := uc.State()
	require.NotNil(t, snap.ActiveChat)
	// opening a chat clears its badge and any stale reply target
	assert.Zero(t, snap.ActiveChat.UnreadCount)
	assert.Nil(t, snap.ReplyTo)
}

func TestReplyByID(t *testing.T) {
	t.Parallel()
	st := store.New(me)
	chat := seededChat("a")
	chat.Messages = []models.Message{
		{ID: "m-1", ChatID: "a", SenderID: "user-2", Content: "hello", CreatedAt: time.Now()},
	}
	uc := usecase.NewChatUsecase(&fakeClient{
		getChats: func(context.Context) ([]models.Chat, error) {
			return []models.Chat{chat}, nil
		},
	}, st)
	require.NoError(t, uc.LoadChats(t.Context()))

	require.NoError(t, uc.ReplyByID("a", "m-1"))
	require.NotNil(t, uc.State().ReplyTo)
	assert.Equal(t, models.MessageID("m-1"), uc.State().ReplyTo.ID)

	assert.True(t, models.IsNotFound(uc.ReplyByID("a", "ghost")))
	assert.True(t, models.IsNotFound(uc.ReplyByID("ghost", "m-1")))
}

func TestThread(t *testing.T) {
	t.Parallel()
	st := store.New(me)
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	chat := seededChat("a")
	chat.Messages = []models.Message{
		{ID: "m-1", ChatID: "a", SenderID: "user-2", Content: "hi", Kind: models.MessageKindText, CreatedAt: base},
		{ID: "m-2", ChatID: "a", SenderID: "user-2", Content: "there", Kind: models.MessageKindText, CreatedAt: base.Add(time.Minute)},
	}
	uc := usecase.NewChatUsecase(&fakeClient{
		getChats: func(context.Context) ([]models.Chat, error) {
			return []models.Chat{chat}, nil
		},
	}, st)
	require.NoError(t, uc.LoadChats(t.Context()))

	items, err := uc.Thread("a")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].FirstInGroup)
	assert.False(t, items[1].FirstInGroup)

	_, err = uc.Thread("ghost")
	assert.True(t, models.IsNotFound(err))
}

func TestClearError(t *testing.T) {
	t.Parallel()
	st := store.New(me)
	uc := usecase.NewChatUsecase(&fakeClient{
		getChats: func(context.Context) ([]models.Chat, error) {
			return nil, models.NewTransportError("get chats", errors.New("boom"))
		},
	}, st)
	require.Error(t, uc.LoadChats(t.Context()))
	require.NotEmpty(t, uc.State().LastError)

	uc.ClearError()
	assert.Empty(t, uc.State().LastError)
}

func TestTrimmedName(t *testing.T) {
	t.Parallel()
	got, ok := usecase.TrimmedName("  Design Team ")
	assert.True(t, ok)
	assert.Equal(t, "Design Team", got)

	_, ok = usecase.TrimmedName("   ")
	assert.False(t, ok)
}
