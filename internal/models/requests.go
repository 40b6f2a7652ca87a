package models

// CreateChatRequest is the boundary DTO for creating a chat. The name must
// be non-empty after trimming; callers validate before dispatching.
type CreateChatRequest struct {
	Name           string   `json:"name" validate:"required"`
	Kind           ChatKind `json:"kind" validate:"required,oneof=direct group channel"`
	ParticipantIDs []UserID `json:"participant_ids"`
	Description    string   `json:"description,omitempty"`
}

type SendMessageRequest struct {
	Content   string     `json:"content" validate:"required"`
	ReplyToID *MessageID `json:"reply_to_id,omitempty"`
}
