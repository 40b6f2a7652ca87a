package models

import "time"

type ChatID string

func (id ChatID) String() string { return string(id) }

type ChatKind string

const (
	ChatKindDirect  ChatKind = "direct"
	ChatKindGroup   ChatKind = "group"
	ChatKindChannel ChatKind = "channel"
)

// Chat is a named conversation with an append-only, chronologically
// ordered message history. Messages are kept in a separate collection on
// persistent backends, so the field is excluded from bson.
type Chat struct {
	ID           ChatID    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name" validate:"required"`
	Kind         ChatKind  `bson:"kind" json:"kind"`
	Participants []User    `bson:"participants" json:"participants"`
	Messages     []Message `bson:"-" json:"messages"`
	UnreadCount  int       `bson:"unread_count" json:"unread_count"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
	AvatarRef    string    `bson:"avatar_ref,omitempty" json:"avatar_ref,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
}

// LastMessage returns the tail of the message history, or nil for an empty
// chat. It is always derived, never stored, so it cannot go stale.
func (c *Chat) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// ActivityTime is the recency key used to order the chat list: the last
// message timestamp when the chat has messages, UpdatedAt otherwise.
func (c *Chat) ActivityTime() time.Time {
	if last := c.LastMessage(); last != nil {
		return last.CreatedAt
	}
	return c.UpdatedAt
}

// FindMessage looks a message up by id within this chat's history.
// Returns nil when the id is unknown.
func (c *Chat) FindMessage(id MessageID) *Message {
	for i := range c.Messages {
		if c.Messages[i].ID == id {
			return &c.Messages[i]
		}
	}
	return nil
}

// Clone returns a deep copy safe to hand out to readers while the original
// keeps being mutated under the store lock.
func (c *Chat) Clone() Chat {
	out := *c
	out.Participants = append([]User(nil), c.Participants...)
	out.Messages = append([]Message(nil), c.Messages...)
	return out
}
