package app

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/fontcraft/chat-core/internal/config"
	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/internal/repo/chatapi"
	"github.com/fontcraft/chat-core/internal/repo/memstub"
	"github.com/fontcraft/chat-core/internal/repo/mongodb"
	"github.com/fontcraft/chat-core/internal/store"
)

func newStore(conf *config.Config) *store.Store {
	return store.New(models.User{
		ID:          models.UserID(conf.User.ID),
		DisplayName: conf.User.Name,
		IsOnline:    true,
	})
}

func newChatBackend(lc fx.Lifecycle, conf *config.Config) (chatapi.Client, error) {
	switch conf.Backend.Mode {
	case "memory", "":
		return memstub.New(conf), nil
	case "rest":
		return chatapi.NewRestClient(conf), nil
	case "mongo":
		db, err := newMongoDB(lc, conf)
		if err != nil {
			return nil, err
		}
		return mongodb.NewClient(db, conf), nil
	default:
		return nil, fmt.Errorf("unknown backend mode %q", conf.Backend.Mode)
	}
}

func newMongoDB(lc fx.Lifecycle, conf *config.Config) (*mongodb.DB, error) {
	opts := options.Client().
		SetAppName("chat-core").
		ApplyURI(conf.Database.URI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("init mongo client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		},
		OnStop: func(ctx context.Context) error {
			return mongoClient.Disconnect(ctx)
		},
	})

	return &mongodb.DB{
		Client:   mongoClient,
		Database: mongoClient.Database(conf.Database.Database),
	}, nil
}
