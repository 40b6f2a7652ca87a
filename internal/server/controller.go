package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/internal/usecase"
)

// Controller exposes the chat actions over HTTP. It is a thin boundary:
// input validation and trimming happen here, state semantics live in the
// usecase and store.
type Controller interface {
	Health(c echo.Context) error
	State(c echo.Context) error
	CreateChat(c echo.Context) error
	DeleteChat(c echo.Context) error
	Thread(c echo.Context) error
	SendMessage(c echo.Context) error
	ActivateChat(c echo.Context) error
	DeactivateChat(c echo.Context) error
	MarkAsRead(c echo.Context) error
	SetReply(c echo.Context) error
	ClearReply(c echo.Context) error
	ClearError(c echo.Context) error
	Users(c echo.Context) error
}

type controller struct {
	chatUsecase usecase.ChatUsecase
}

func NewController(chatUsecase usecase.ChatUsecase) Controller {
	return &controller{
		chatUsecase: chatUsecase,
	}
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "chat-core",
	})
}

func (h *controller) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.chatUsecase.State())
}

func (h *controller) CreateChat(c echo.Context) error {
	var req models.CreateChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	name, ok := usecase.TrimmedName(req.Name)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "chat name must not be blank")
	}
	req.Name = name

	chat, err := h.chatUsecase.CreateChat(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, chat)
}

func (h *controller) DeleteChat(c echo.Context) error {
	id := models.ChatID(c.Param("id"))
	if err := h.chatUsecase.DeleteChat(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *controller) Thread(c echo.Context) error {
	items, err := h.chatUsecase.Thread(models.ChatID(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *controller) SendMessage(c echo.Context) error {
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	content, ok := usecase.TrimmedName(req.Content)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "message content must not be blank")
	}
	req.Content = content

	msg, err := h.chatUsecase.SendMessage(c.Request().Context(), models.ChatID(c.Param("id")), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *controller) ActivateChat(c echo.Context) error {
	h.chatUsecase.SetActiveChat(models.ChatID(c.Param("id")))
	return c.NoContent(http.StatusNoContent)
}

func (h *controller) DeactivateChat(c echo.Context) error {
	h.chatUsecase.SetActiveChat("")
	return c.NoContent(http.StatusNoContent)
}

func (h *controller) MarkAsRead(c echo.Context) error {
	h.chatUsecase.MarkAsRead(models.ChatID(c.Param("id")))
	return c.NoContent(http.StatusNoContent)
}

type replyRequest struct {
	ChatID    models.ChatID    `json:"chat_id" validate:"required"`
	MessageID models.MessageID `json:"message_id" validate:"required"`
}

func (h *controller) SetReply(c echo.Context) error {
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.chatUsecase.ReplyByID(req.ChatID, req.MessageID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *controller) ClearReply(c echo.Context) error {
	h.chatUsecase.ReplyToMessage(nil)
	return c.NoContent(http.StatusNoContent)
}

func (h *controller) ClearError(c echo.Context) error {
	h.chatUsecase.ClearError()
	return c.NoContent(http.StatusNoContent)
}

func (h *controller) Users(c echo.Context) error {
	users, err := h.chatUsecase.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
