package platform

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/mirefield/discord-quote/integrations/pluralkit"
	"github.com/mirefield/discord-quote/logger/dlog"
	"github.com/mirefield/discord-quote/quote"
)

// Discord caps embeds per message at 10.
const maxEmbeds = 10

func messageCreateHandler(event *events.GuildMessageCreate) {
	msg := event.Message
	if msg.Author.ID == event.Client().ID() {
		return
	}
	// bot messages are ignored unless they came through a webhook,
	// those may be proxied messages written by a real member
	if msg.Author.Bot && msg.WebhookID == nil {
		return
	}

	embeds, err := quote.FromMessage(quote.NewRestDiscord(event.Client().Rest()), pluralkit.GetClient(), msg)
	if err != nil {
		dlog.Error("failed to resolve message links", "message", event.MessageID, "err", err)
		return
	}
	if len(embeds) == 0 {
		return
	}
	if len(embeds) > maxEmbeds {
		embeds = embeds[:maxEmbeds]
	}

	created, err := event.Client().Rest().CreateMessage(event.ChannelID, discord.MessageCreate{
		Embeds: embeds,
		MessageReference: &discord.MessageReference{
			MessageID: &event.MessageID,
		},
		AllowedMentions: &discord.AllowedMentions{},
	})
	if err != nil {
		dlog.Error("failed to send quote embeds", "channel", event.ChannelID, "err", err)
		return
	}
	dlog.Info("Created quote reply", "ID", created.ID, "embeds", len(embeds))
}

func botIsUpReadyHandler(event *events.Ready) {
	user, _ := event.Client().Caches().SelfUser()
	dlog.Info("Bot is up!")
	dlog.Info("Bot", "username", user.Username)
}
