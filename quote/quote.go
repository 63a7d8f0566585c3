// Package quote resolves message permalinks posted in guild messages
// into embeds quoting the referenced messages. A link is only resolved
// when the posting author can actually view the target channel; for
// messages proxied through a webhook the real sender's permissions are
// checked instead of the webhook's.
package quote

import (
	"regexp"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"

	"github.com/mirefield/discord-quote/integrations/pluralkit"
	"github.com/mirefield/discord-quote/logger/dlog"
)

var linkPattern = regexp.MustCompile(`(?:https?://)?(?:canary\.|ptb\.)?discord(?:app)?\.com/channels/(\d+)/(\d+)/(\d+)`)

// FromMessage scans msg for message permalinks and returns one embed
// per resolvable link, in match order. Links into other guilds and
// links whose target channel the author can't see are skipped without
// error; an unresolvable channel or message aborts the whole call.
// Messages outside a guild resolve to nothing.
func FromMessage(d Discord, pk pluralkit.Client, msg discord.Message) ([]discord.Embed, error) {
	if msg.GuildID == nil {
		dlog.Debug("not resolving links in a DM")
		return nil, nil
	}
	guildID := *msg.GuildID

	// proxied messages reference the member of the unproxied account
	authorID := msg.Author.ID
	if msg.WebhookID != nil {
		authorID = realAuthorID(pk, msg)
	}

	member, err := d.GetMember(guildID, authorID)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't get member %s of guild %s", authorID, guildID)
	}

	var embeds []discord.Embed
	for _, match := range linkPattern.FindAllStringSubmatch(msg.Content, -1) {
		url := match[0]
		targetGuildID, err := snowflake.Parse(match[1])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed guild id in %q", url)
		}
		if targetGuildID != guildID {
			dlog.Debug("not resolving message from another server", "url", url)
			continue
		}
		targetChannelID, err := snowflake.Parse(match[2])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed channel id in %q", url)
		}
		targetMessageID, err := snowflake.Parse(match[3])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed message id in %q", url)
		}
		dlog.Debug("attempting to resolve message", "message", targetMessageID, "url", url)

		channel, err := d.GetChannel(targetChannelID)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't get channel %s", targetChannelID)
		}
		guildChannel, ok := channel.(discord.GuildChannel)
		if !ok {
			return nil, errors.Errorf("couldn't get guild channel from channel id %s", targetChannelID)
		}

		visible, err := CanViewChannel(d, *member, guildChannel)
		if err != nil {
			return nil, err
		}
		if !visible {
			dlog.Debug("not resolving message the author can't see", "channel", targetChannelID)
			continue
		}

		target, err := d.GetMessage(targetChannelID, targetMessageID)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't get channel message from id %s", targetMessageID)
		}
		// messages fetched over REST carry no guild id, the permalink needs it
		target.GuildID = &guildID

		embeds = append(embeds, ToEmbed(d, *target))
	}

	return embeds, nil
}

// realAuthorID resolves the human sender behind a proxied message. Any
// lookup failure falls back to the nominal author; a proxy outage must
// never break link resolution.
func realAuthorID(pk pluralkit.Client, msg discord.Message) snowflake.ID {
	sender, err := pk.SenderOf(msg.ID)
	if err != nil {
		dlog.Debug("falling back to the nominal author", "message", msg.ID, "err", err)
		return msg.Author.ID
	}
	return sender
}
