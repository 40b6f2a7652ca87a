// Package chatapi defines the data access port the chat core depends on,
// and its REST implementation. The core never talks to a backend except
// through Client; swap implementations via config (memory, mongo, rest).
package chatapi

import (
	"context"

	"github.com/fontcraft/chat-core/internal/models"
)

type Client interface {
	GetChats(ctx context.Context) ([]models.Chat, error)
	GetChat(ctx context.Context, id models.ChatID) (*models.Chat, error)
	CreateChat(ctx context.Context, req models.CreateChatRequest) (*models.Chat, error)
	SendMessage(ctx context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error)
	DeleteChat(ctx context.Context, id models.ChatID) error
	GetUsers(ctx context.Context) ([]models.User, error)
}
