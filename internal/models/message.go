package models

import "time"

type MessageID string

func (id MessageID) String() string { return string(id) }

type MessageKind string

const (
	MessageKindText  MessageKind = "text"
	MessageKindImage MessageKind = "image"
	MessageKindFile  MessageKind = "file"
)

// Message is immutable once created. The edited fields are carried for
// backends that support editing; the core never mutates them.
type Message struct {
	ID        MessageID   `bson:"_id" json:"id"`
	ChatID    ChatID      `bson:"chat_id" json:"chat_id"`
	SenderID  UserID      `bson:"sender_id" json:"sender_id" validate:"required"`
	Content   string      `bson:"content" json:"content"`
	Kind      MessageKind `bson:"kind" json:"kind"`
	ReplyToID *MessageID  `bson:"reply_to_id,omitempty" json:"reply_to_id,omitempty"`
	Edited    bool        `bson:"edited,omitempty" json:"edited,omitempty"`
	EditedAt  *time.Time  `bson:"edited_at,omitempty" json:"edited_at,omitempty"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
}
