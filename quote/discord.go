package quote

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// Discord is the slice of the platform API the quote package needs.
// Everything is fetched per call; nothing is cached, so permission
// overwrites are always evaluated against current state.
type Discord interface {
	GetGuild(guildID snowflake.ID) (*discord.RestGuild, error)
	GetChannel(channelID snowflake.ID) (discord.Channel, error)
	GetMember(guildID snowflake.ID, userID snowflake.ID) (*discord.Member, error)
	GetMessage(channelID snowflake.ID, messageID snowflake.ID) (*discord.Message, error)
}

type restDiscord struct {
	rest rest.Rest
}

// NewRestDiscord wraps a disgo rest client in the Discord interface.
func NewRestDiscord(r rest.Rest) Discord {
	return &restDiscord{rest: r}
}

func (r *restDiscord) GetGuild(guildID snowflake.ID) (*discord.RestGuild, error) {
	return r.rest.GetGuild(guildID, false)
}

func (r *restDiscord) GetChannel(channelID snowflake.ID) (discord.Channel, error) {
	return r.rest.GetChannel(channelID)
}

func (r *restDiscord) GetMember(guildID snowflake.ID, userID snowflake.ID) (*discord.Member, error) {
	return r.rest.GetMember(guildID, userID)
}

func (r *restDiscord) GetMessage(channelID snowflake.ID, messageID snowflake.ID) (*discord.Message, error) {
	return r.rest.GetMessage(channelID, messageID)
}
