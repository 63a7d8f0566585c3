package platform

import (
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"golang.org/x/net/context"

	"github.com/mirefield/discord-quote/config"
	"github.com/mirefield/discord-quote/logger/dlog"
)

var client *bot.Client

func Setup(cfg *config.Config) {
	clientTmp, err := disgo.New(cfg.Discord.Token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentMessageContent,
			),
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(cache.FlagGuilds, cache.FlagChannels, cache.FlagRoles),
		),

		bot.WithEventListenerFunc(botIsUpReadyHandler),
		bot.WithEventListenerFunc(func(e *events.GuildMessageCreate) {
			go messageCreateHandler(e)
		}),
	)
	if err != nil {
		panic(err)
	}
	if err = clientTmp.OpenGateway(context.TODO()); err != nil {
		panic(err)
	}
	client = &clientTmp
}

func Client() bot.Client {
	return *client
}

func Close() {
	Client().Close(context.TODO())
	dlog.Info("disgo close successfully")
}
