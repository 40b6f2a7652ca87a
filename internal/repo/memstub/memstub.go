// Package memstub is the reference in-memory implementation of the data
// access port. It simulates network latency with fixed per-call delays;
// context cancellation surfaces as a transport failure, lookups of
// unknown chats as not-found.
package memstub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fontcraft/chat-core/internal/config"
	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/internal/repo/chatapi"
)

const (
	getChatsDelay    = 500 * time.Millisecond
	getChatDelay     = 300 * time.Millisecond
	createChatDelay  = 800 * time.Millisecond
	sendMessageDelay = 200 * time.Millisecond
	deleteChatDelay  = 400 * time.Millisecond
	getUsersDelay    = 300 * time.Millisecond
)

type Stub struct {
	mu    sync.RWMutex
	users []models.User
	chats []models.Chat
	me    models.User
	scale float64
}

var _ chatapi.Client = (*Stub)(nil)

func New(conf *config.Config) *Stub {
	users := sampleUsers()
	me := users[0]
	if conf.User.ID != "" {
		me = models.User{ID: models.UserID(conf.User.ID), DisplayName: conf.User.Name, IsOnline: true}
		for _, u := range users {
			if u.ID == me.ID {
				me = u
				break
			}
		}
	}
	return &Stub{
		users: users,
		chats: sampleChats(users),
		me:    me,
		scale: conf.Stub.LatencyScale,
	}
}

// CurrentUser is the user the stub attributes local sends to.
func (s *Stub) CurrentUser() models.User { return s.me }

func (s *Stub) wait(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * s.scale)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Stub) GetChats(ctx context.Context) ([]models.Chat, error) {
	if err := s.wait(ctx, getChatsDelay); err != nil {
		return nil, models.NewTransportError("get chats", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Chat, len(s.chats))
	for i := range s.chats {
		out[i] = s.chats[i].Clone()
	}
	return out, nil
}

func (s *Stub) GetChat(ctx context.Context, id models.ChatID) (*models.Chat, error) {
	if err := s.wait(ctx, getChatDelay); err != nil {
		return nil, models.NewTransportError("get chat", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.chats {
		if s.chats[i].ID == id {
			c := s.chats[i].Clone()
			return &c, nil
		}
	}
	return nil, models.NewNotFoundError("chat %s not found", id)
}

func (s *Stub) CreateChat(ctx context.Context, req models.CreateChatRequest) (*models.Chat, error) {
	if err := s.wait(ctx, createChatDelay); err != nil {
		return nil, models.NewTransportError("create chat", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	participants := []models.User{s.me}
	for _, id := range req.ParticipantIDs {
		for _, u := range s.users {
			if u.ID == id && u.ID != s.me.ID {
				participants = append(participants, u)
			}
		}
	}

	now := time.Now()
	chat := models.Chat{
		ID:           models.ChatID("chat-" + uuid.NewString()),
		Name:         req.Name,
		Kind:         req.Kind,
		Participants: participants,
		Description:  req.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.chats = append([]models.Chat{chat}, s.chats...)
	out := chat.Clone()
	return &out, nil
}

// SendMessage mints a message attributed to the current user. The store
// is canonical for message history, so the stub does not persist it.
func (s *Stub) SendMessage(ctx context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error) {
	if err := s.wait(ctx, sendMessageDelay); err != nil {
		return nil, models.NewTransportError("send message", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.chatExists(chatID) {
		return nil, models.NewNotFoundError("chat %s not found", chatID)
	}
	msg := models.Message{
		ID:        models.MessageID("msg-" + uuid.NewString()),
		ChatID:    chatID,
		SenderID:  s.me.ID,
		Content:   req.Content,
		Kind:      models.MessageKindText,
		ReplyToID: req.ReplyToID,
		CreatedAt: time.Now(),
	}
	return &msg, nil
}

// chatExists must be called with the lock held.
func (s *Stub) chatExists(id models.ChatID) bool {
	for i := range s.chats {
		if s.chats[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Stub) DeleteChat(ctx context.Context, id models.ChatID) error {
	if err := s.wait(ctx, deleteChatDelay); err != nil {
		return models.NewTransportError("delete chat", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.chats {
		if s.chats[i].ID == id {
			s.chats = append(s.chats[:i], s.chats[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Stub) GetUsers(ctx context.Context) ([]models.User, error) {
	if err := s.wait(ctx, getUsersDelay); err != nil {
		return nil, models.NewTransportError("get users", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...), nil
}
