package models

import "time"

// UserID identifies a user. Users are created by the backend and are
// read-only to the core.
type UserID string

func (id UserID) String() string { return string(id) }

type User struct {
	ID          UserID     `bson:"_id" json:"id"`
	DisplayName string     `bson:"display_name" json:"display_name" validate:"required"`
	AvatarRef   string     `bson:"avatar_ref,omitempty" json:"avatar_ref,omitempty"`
	IsOnline    bool       `bson:"is_online" json:"is_online"`
	LastSeenAt  *time.Time `bson:"last_seen_at,omitempty" json:"last_seen_at,omitempty"`
}
