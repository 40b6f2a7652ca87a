package app

import (
	"context"

	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/fontcraft/chat-core/internal/config"
	"github.com/fontcraft/chat-core/internal/server"
	"github.com/fontcraft/chat-core/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newStore,
			newChatBackend,

			server.NewController,

			usecase.NewChatUsecase,
		),
		fx.Supply(conf),
		fx.Invoke(InitializeChats),
		fx.Invoke(funcs...),
	)
}

// InitializeChats performs the initial chat list load on startup so the
// server never serves an empty pre-load state.
func InitializeChats(lc fx.Lifecycle, uc usecase.ChatUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return uc.LoadChats(ctx)
		},
	})
}
