package quote

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/mirefield/discord-quote/logger/dlog"
)

const embedColor = 0x6FC6E2

// FirstImageURL returns the URL of the first attachment declaring an
// image content type, in the message's own attachment order.
func FirstImageURL(msg discord.Message) (string, bool) {
	for _, attachment := range msg.Attachments {
		if attachment.ContentType != nil && strings.HasPrefix(*attachment.ContentType, "image/") {
			return attachment.URL, true
		}
	}
	return "", false
}

// ToEmbed builds the quote embed for msg: author tag and avatar, brand
// color, the original send time, a "#channel" footer and the message
// body followed by a jump link. Attachments become non-inline fields,
// with the first image attachment used as the embed image. The footer
// lookup is the only network call and degrades to an empty name.
func ToEmbed(d Discord, msg discord.Message) discord.Embed {
	builder := discord.NewEmbedBuilder().
		SetAuthor(authorTag(msg.Author), "", msg.Author.EffectiveAvatarURL()).
		SetColor(embedColor).
		SetTimestamp(msg.CreatedAt).
		SetFooter("#"+channelName(d, msg.ChannelID), "").
		SetDescriptionf("%s\n\n[Jump to original message](%s)", msg.Content, MessageLink(msg))

	if len(msg.Attachments) > 0 {
		for _, attachment := range msg.Attachments {
			builder.AddField("Attachments", fmt.Sprintf("[%s](%s)", attachment.Filename, attachment.URL), false)
		}
		if image, ok := FirstImageURL(msg); ok {
			builder.SetImage(image)
		}
	}

	return builder.Build()
}

// MessageLink returns the canonical permalink of msg.
func MessageLink(msg discord.Message) string {
	guild := "@me"
	if msg.GuildID != nil {
		guild = msg.GuildID.String()
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guild, msg.ChannelID, msg.ID)
}

func authorTag(user discord.User) string {
	if user.Discriminator == "" || user.Discriminator == "0" || user.Discriminator == "0000" {
		return user.Username
	}
	return user.Username + "#" + user.Discriminator
}

func channelName(d Discord, channelID snowflake.ID) string {
	channel, err := d.GetChannel(channelID)
	if err != nil {
		dlog.Debug("couldn't resolve channel name for footer", "channel", channelID, "err", err)
		return ""
	}
	if guildChannel, ok := channel.(discord.GuildChannel); ok {
		return guildChannel.Name()
	}
	return ""
}
