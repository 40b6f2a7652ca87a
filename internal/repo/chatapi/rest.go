package chatapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fontcraft/chat-core/internal/config"
	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/pkg/util"
)

const requestTimeout = 30 * time.Second

type restClient struct {
	http *resty.Client
}

// NewRestClient builds the REST adapter of the port. The remote contract
// mirrors the server package routes.
func NewRestClient(conf *config.Config) Client {
	c := util.NewRestyClient().SetBaseURL(conf.ChatAPI.BaseURL)
	return &restClient{http: c}
}

func (c *restClient) GetChats(ctx context.Context) ([]models.Chat, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var chats []models.Chat
	resp, err := c.http.R().
		SetContext(timeoutCtx).
		SetResult(&chats).
		Get("/api/v1/chats")
	if err := mapError("get chats", resp, err); err != nil {
		return nil, err
	}
	return chats, nil
}

func (c *restClient) GetChat(ctx context.Context, id models.ChatID) (*models.Chat, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var chat models.Chat
	resp, err := c.http.R().
		SetContext(timeoutCtx).
		SetResult(&chat).
		SetPathParam("id", id.String()).
		Get("/api/v1/chats/{id}")
	if err := mapError("get chat", resp, err); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *restClient) CreateChat(ctx context.Context, req models.CreateChatRequest) (*models.Chat, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var chat models.Chat
	resp, err := c.http.R().
		SetContext(timeoutCtx).
		SetBody(req).
		SetResult(&chat).
		Post("/api/v1/chats")
	if err := mapError("create chat", resp, err); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *restClient) SendMessage(ctx context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var msg models.Message
	resp, err := c.http.R().
		SetContext(timeoutCtx).
		SetBody(req).
		SetResult(&msg).
		SetPathParam("id", chatID.String()).
		Post("/api/v1/chats/{id}/messages")
	if err := mapError("send message", resp, err); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *restClient) DeleteChat(ctx context.Context, id models.ChatID) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(timeoutCtx).
		SetPathParam("id", id.String()).
		Delete("/api/v1/chats/{id}")
	return mapError("delete chat", resp, err)
}

func (c *restClient) GetUsers(ctx context.Context) ([]models.User, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var users []models.User
	resp, err := c.http.R().
		SetContext(timeoutCtx).
		SetResult(&users).
		Get("/api/v1/users")
	if err := mapError("get users", resp, err); err != nil {
		return nil, err
	}
	return users, nil
}

// mapError folds transport failures and HTTP statuses into the port's
// error taxonomy: 404 is NotFound, other 4xx are Validation, everything
// else is Transport.
func mapError(op string, resp *resty.Response, err error) error {
	if err != nil {
		return models.NewTransportError(op, err)
	}
	if !resp.IsError() {
		return nil
	}
	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return models.NewNotFoundError("%s: %s", op, resp.String())
	case code >= 400 && code < 500:
		return models.NewValidationError("%s: %s", op, resp.String())
	default:
		return models.NewTransportError(op, fmt.Errorf("status %d: %s", code, resp.String()))
	}
}
