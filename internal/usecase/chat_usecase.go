package usecase

import (
	"context"
	"fmt"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/internal/repo/chatapi"
	"github.com/fontcraft/chat-core/internal/store"
	"github.com/fontcraft/chat-core/internal/timeline"
)

// ChatUsecase is the action surface external callers (the UI) dispatch
// through. The network-backed actions record failures into the store's
// error state AND return them, so callers can both display a passive
// banner and react inline.
type ChatUsecase interface {
	LoadChats(ctx context.Context) error
	CreateChat(ctx context.Context, req models.CreateChatRequest) (*models.Chat, error)
	DeleteChat(ctx context.Context, id models.ChatID) error
	SendMessage(ctx context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error)

	SetActiveChat(id models.ChatID)
	MarkAsRead(id models.ChatID)
	ReplyToMessage(msg *models.Message)
	ReplyByID(chatID models.ChatID, messageID models.MessageID) error
	ClearError()

	State() store.Snapshot
	Thread(chatID models.ChatID) ([]timeline.ThreadItem, error)
	Users(ctx context.Context) ([]models.User, error)
}

type chatUsecase struct {
	repo  chatapi.Client
	state *store.Store
}

func NewChatUsecase(repo chatapi.Client, state *store.Store) ChatUsecase {
	return &chatUsecase{
		repo:  repo,
		state: state,
	}
}

func (uc *chatUsecase) LoadChats(ctx context.Context) error {
	uc.state.BeginLoad()
	chats, err := uc.repo.GetChats(ctx)
	if err != nil {
		uc.state.LoadFailed(err.Error())
		return fmt.Errorf("load chats: %w", err)
	}
	log.Infof(ctx, "loaded %d chats", len(chats))
	uc.state.LoadSucceeded(chats)
	return nil
}

// CreateChat expects a name already validated non-empty at the call
// boundary; it does not re-validate.
func (uc *chatUsecase) CreateChat(ctx context.Context, req models.CreateChatRequest) (*models.Chat, error) {
	uc.state.BeginLoad()
	chat, err := uc.repo.CreateChat(ctx, req)
	if err != nil {
		uc.state.LoadFailed(err.Error())
		return nil, fmt.Errorf("create chat: %w", err)
	}
	log.Infof(ctx, "created chat %s (%s)", chat.ID, chat.Kind)
	uc.state.ChatCreated(*chat)
	return chat, nil
}

func (uc *chatUsecase) DeleteChat(ctx context.Context, id models.ChatID) error {
	uc.state.BeginLoad()
	if err := uc.repo.DeleteChat(ctx, id); err != nil {
		uc.state.LoadFailed(err.Error())
		return fmt.Errorf("delete chat: %w", err)
	}
	log.Infof(ctx, "deleted chat %s", id)
	uc.state.ChatDeleted(id)
	return nil
}

// SendMessage deliberately does not toggle the global loading flag: the
// compose box must stay responsive while the send is in flight.
func (uc *chatUsecase) SendMessage(ctx context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error) {
	msg, err := uc.repo.SendMessage(ctx, chatID, req)
	if err != nil {
		uc.state.LoadFailed(err.Error())
		return nil, fmt.Errorf("send message: %w", err)
	}
	uc.state.MessageAppended(chatID, *msg)
	// sending a reply consumes the pending reply target
	if req.ReplyToID != nil {
		uc.state.ReplyTargetSet(nil)
	}
	return msg, nil
}

// SetActiveChat switches focus, resets the chat's unread counter and
// drops any pending reply target from the previous conversation.
func (uc *chatUsecase) SetActiveChat(id models.ChatID) {
	uc.state.ActiveChatSet(id)
	if id != "" {
		uc.state.ReadMarked(id)
	}
	uc.state.ReplyTargetSet(nil)
}

func (uc *chatUsecase) MarkAsRead(id models.ChatID) {
	uc.state.ReadMarked(id)
}

func (uc *chatUsecase) ReplyToMessage(msg *models.Message) {
	uc.state.ReplyTargetSet(msg)
}

// ReplyByID resolves a message within the given chat and sets it as the
// pending reply target.
func (uc *chatUsecase) ReplyByID(chatID models.ChatID, messageID models.MessageID) error {
	chat, ok := uc.state.Chat(chatID)
	if !ok {
		return models.NewNotFoundError("chat %s not found", chatID)
	}
	msg := chat.FindMessage(messageID)
	if msg == nil {
		return models.NewNotFoundError("message %s not found in chat %s", messageID, chatID)
	}
	uc.state.ReplyTargetSet(msg)
	return nil
}

func (uc *chatUsecase) ClearError() {
	uc.state.ErrorCleared()
}

func (uc *chatUsecase) State() store.Snapshot {
	return uc.state.Snapshot()
}

// Thread returns the chat's history annotated with grouping flags for
// rendering.
func (uc *chatUsecase) Thread(chatID models.ChatID) ([]timeline.ThreadItem, error) {
	chat, ok := uc.state.Chat(chatID)
	if !ok {
		return nil, models.NewNotFoundError("chat %s not found", chatID)
	}
	return timeline.BuildThread(chat.Messages), nil
}

func (uc *chatUsecase) Users(ctx context.Context) ([]models.User, error) {
	users, err := uc.repo.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return users, nil
}

// TrimmedName is the boundary validation helper for chat names and
// message content: empty after trimming means invalid.
func TrimmedName(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
