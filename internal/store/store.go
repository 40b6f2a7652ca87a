// Package store holds the canonical in-memory chat collection and applies
// a fixed set of transitions to it. Every transition runs atomically under
// one mutex; readers only ever see a fully applied state. Transitions are
// total: malformed input (an unknown chat id, a duplicate create) degrades
// to a logged no-op instead of an error.
package store

import (
	"sync"

	"github.com/carousell/ct-go/pkg/logger"

	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/internal/timeline"
)

// Snapshot is a read-only copy of the collection state. Mutating a
// snapshot never affects the store.
type Snapshot struct {
	Chats       []models.Chat   `json:"chats"`
	ActiveChat  *models.Chat    `json:"active_chat,omitempty"`
	CurrentUser models.User     `json:"current_user"`
	ReplyTo     *models.Message `json:"reply_to,omitempty"`
	IsLoading   bool            `json:"is_loading"`
	LastError   string          `json:"error,omitempty"`
}

type Store struct {
	mu sync.Mutex

	log *logger.Logger

	// chats is kept in display order: descending by activity time,
	// stable for ties.
	chats        []models.Chat
	activeChatID models.ChatID
	currentUser  models.User
	replyTo      *models.Message
	loading      bool
	lastError    string
}

func New(currentUser models.User) *Store {
	return &Store{
		log:         logger.MustNamed("store"),
		currentUser: currentUser,
	}
}

func (s *Store) find(id models.ChatID) *models.Chat {
	for i := range s.chats {
		if s.chats[i].ID == id {
			return &s.chats[i]
		}
	}
	return nil
}

// BeginLoad marks a network operation in flight and clears any stale
// error. Idempotent.
func (s *Store) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.lastError = ""
}

// LoadSucceeded replaces the whole collection and re-derives display
// order. The active chat survives only if it still exists.
func (s *Store) LoadSucceeded(chats []models.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = make([]models.Chat, len(chats))
	for i := range chats {
		s.chats[i] = chats[i].Clone()
	}
	timeline.SortChatsByActivity(s.chats)
	if s.activeChatID != "" && s.find(s.activeChatID) == nil {
		s.activeChatID = ""
	}
	s.loading = false
}

func (s *Store) LoadFailed(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = message
	s.loading = false
}

// ChatCreated inserts a freshly created chat at the head of the list and
// makes it active. A duplicate id is a no-op.
func (s *Store) ChatCreated(chat models.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.find(chat.ID) != nil {
		s.log.Warnw("ignoring duplicate chat create", "chat_id", chat.ID)
		return
	}
	s.chats = append([]models.Chat{chat.Clone()}, s.chats...)
	s.activeChatID = chat.ID
	s.loading = false
}

// ChatDeleted removes a chat and all its messages. Deleting the active
// chat leaves no chat active.
func (s *Store) ChatDeleted(id models.ChatID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.chats[:0]
	found := false
	for i := range s.chats {
		if s.chats[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, s.chats[i])
	}
	if !found {
		s.log.Debugw("delete of unknown chat", "chat_id", id)
		return
	}
	s.chats = kept
	if s.activeChatID == id {
		s.activeChatID = ""
	}
	s.loading = false
}

// MessageAppended appends a message to its chat, bumps UpdatedAt, and
// re-sorts the list. The unread counter increments only while the chat is
// not active; the active chat stays at zero.
func (s *Store) MessageAppended(chatID models.ChatID, msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.find(chatID)
	if chat == nil {
		s.log.Debugw("append to unknown chat", "chat_id", chatID, "message_id", msg.ID)
		return
	}
	chat.Messages = append(chat.Messages, msg)
	chat.UpdatedAt = msg.CreatedAt
	if s.activeChatID == chatID {
		chat.UnreadCount = 0
	} else {
		chat.UnreadCount++
	}
	timeline.SortChatsByActivity(s.chats)
}

// ActiveChatSet designates the user's focus. An empty id clears the
// selection; an unknown id is a no-op.
func (s *Store) ActiveChatSet(id models.ChatID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" && s.find(id) == nil {
		s.log.Debugw("activate of unknown chat", "chat_id", id)
		return
	}
	s.activeChatID = id
}

// ReadMarked resets a chat's unread counter. Unknown ids are a no-op.
func (s *Store) ReadMarked(id models.ChatID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.find(id)
	if chat == nil {
		s.log.Debugw("mark read of unknown chat", "chat_id", id)
		return
	}
	chat.UnreadCount = 0
}

// ReplyTargetSet records (or clears, with nil) the message the next send
// replies to.
func (s *Store) ReplyTargetSet(msg *models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg == nil {
		s.replyTo = nil
		return
	}
	m := *msg
	s.replyTo = &m
}

func (s *Store) ErrorCleared() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// Snapshot returns a deep copy of the full state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Chats:       make([]models.Chat, len(s.chats)),
		CurrentUser: s.currentUser,
		IsLoading:   s.loading,
		LastError:   s.lastError,
	}
	for i := range s.chats {
		snap.Chats[i] = s.chats[i].Clone()
	}
	if chat := s.find(s.activeChatID); chat != nil {
		c := chat.Clone()
		snap.ActiveChat = &c
	}
	if s.replyTo != nil {
		m := *s.replyTo
		snap.ReplyTo = &m
	}
	return snap
}

// Chat returns a copy of one chat by id.
func (s *Store) Chat(id models.ChatID) (models.Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.find(id)
	if chat == nil {
		return models.Chat{}, false
	}
	return chat.Clone(), true
}

// ActiveChatID returns the current selection, or "" when none.
func (s *Store) ActiveChatID() models.ChatID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeChatID
}

// ReplyTarget returns a copy of the pending reply target, or nil.
func (s *Store) ReplyTarget() *models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.replyTo == nil {
		return nil
	}
	m := *s.replyTo
	return &m
}

// CurrentUser returns the user all local sends are attributed to.
func (s *Store) CurrentUser() models.User {
	return s.currentUser
}
