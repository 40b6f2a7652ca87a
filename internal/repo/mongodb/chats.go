// Package mongodb implements the data access port over MongoDB. Chats and
// users are stored as documents mirroring the model structs; messages
// live in their own collection keyed by chat_id, fetched in chronological
// order so the core's append-only invariant holds on load.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fontcraft/chat-core/internal/config"
	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/internal/repo/chatapi"
)

type client struct {
	chats    *mongo.Collection
	messages *mongo.Collection
	users    *mongo.Collection
	me       models.UserID
}

var _ chatapi.Client = (*client)(nil)

func NewClient(db *DB, conf *config.Config) chatapi.Client {
	return &client{
		chats:    db.Database.Collection("chats"),
		messages: db.Database.Collection("messages"),
		users:    db.Database.Collection("users"),
		me:       models.UserID(conf.User.ID),
	}
}

func (c *client) GetChats(ctx context.Context) ([]models.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := c.chats.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, models.NewTransportError("find chats", err)
	}
	defer cursor.Close(ctx)

	var chats []models.Chat
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, models.NewTransportError("decode chats", err)
	}
	for i := range chats {
		msgs, err := c.chatMessages(ctx, chats[i].ID)
		if err != nil {
			return nil, err
		}
		chats[i].Messages = msgs
	}
	return chats, nil
}

func (c *client) GetChat(ctx context.Context, id models.ChatID) (*models.Chat, error) {
	var chat models.Chat
	err := c.chats.FindOne(ctx, bson.M{"_id": id}).Decode(&chat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.NewNotFoundError("chat %s not found", id)
	}
	if err != nil {
		return nil, models.NewTransportError("find chat", err)
	}
	msgs, err := c.chatMessages(ctx, chat.ID)
	if err != nil {
		return nil, err
	}
	chat.Messages = msgs
	return &chat, nil
}

func (c *client) chatMessages(ctx context.Context, id models.ChatID) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := c.messages.Find(ctx, bson.M{"chat_id": id}, opts)
	if err != nil {
		return nil, models.NewTransportError("find messages", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, models.NewTransportError("decode messages", err)
	}
	return msgs, nil
}

func (c *client) CreateChat(ctx context.Context, req models.CreateChatRequest) (*models.Chat, error) {
	participants, err := c.resolveParticipants(ctx, req.ParticipantIDs)
	if err != nil {
		return nil, err
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
	if _, err := c.chats.InsertOne(ctx, chat); err != nil {
		return nil, models.NewTransportError("insert chat", err)
	}
	return &chat, nil
}

func (c *client) resolveParticipants(ctx context.Context, ids []models.UserID) ([]models.User, error) {
	filter := bson.M{"_id": bson.M{"$in": append([]models.UserID{c.me}, ids...)}}
	cursor, err := c.users.Find(ctx, filter)
	if err != nil {
		return nil, models.NewTransportError("find participants", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, models.NewTransportError("decode participants", err)
	}
	return users, nil
}

func (c *client) SendMessage(ctx context.Context, chatID models.ChatID, req models.SendMessageRequest) (*models.Message, error) {
	count, err := c.chats.CountDocuments(ctx, bson.M{"_id": chatID})
	if err != nil {
		return nil, models.NewTransportError("check chat", err)
	}
	if count == 0 {
		return nil, models.NewNotFoundError("chat %s not found", chatID)
	}

	now := time.Now()
	msg := models.Message{
		ID:        models.MessageID("msg-" + uuid.NewString()),
		ChatID:    chatID,
		SenderID:  c.me,
		Content:   req.Content,
		Kind:      models.MessageKindText,
		ReplyToID: req.ReplyToID,
		CreatedAt: now,
	}
	if _, err := c.messages.InsertOne(ctx, msg); err != nil {
		return nil, models.NewTransportError("insert message", err)
	}

	update := bson.M{"$set": bson.M{"updated_at": now}}
	if _, err := c.chats.UpdateByID(ctx, chatID, update); err != nil {
		return nil, models.NewTransportError("touch chat", err)
	}
	return &msg, nil
}

// DeleteChat removes the chat and all of its messages.
func (c *client) DeleteChat(ctx context.Context, id models.ChatID) error {
	res, err := c.chats.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.NewTransportError("delete chat", err)
	}
	if res.DeletedCount == 0 {
		return models.NewNotFoundError("chat %s not found", id)
	}
	if _, err := c.messages.DeleteMany(ctx, bson.M{"chat_id": id}); err != nil {
		return models.NewTransportError(fmt.Sprintf("delete messages of chat %s", id), err)
	}
	return nil
}

func (c *client) GetUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := c.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, models.NewTransportError("find users", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, models.NewTransportError("decode users", err)
	}
	return users, nil
}
