package quote

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/pkg/errors"
)

var requiredPermissions = discord.PermissionViewChannel.Add(discord.PermissionReadMessageHistory)

// CanViewChannel reports whether member may view channel and read its
// history. Public threads carry no overwrites of their own, so they are
// checked against their parent channel; a thread whose parent can't be
// resolved is an error. Channel kinds other than text and news are
// always denied.
func CanViewChannel(d Discord, member discord.Member, channel discord.GuildChannel) (bool, error) {
	var target discord.GuildChannel
	switch channel.Type() {
	case discord.ChannelTypeGuildPublicThread:
		parentID := channel.ParentID()
		if parentID == nil {
			return false, errors.Errorf("couldn't get parent of thread %s", channel.ID())
		}
		parent, err := d.GetChannel(*parentID)
		if err != nil {
			return false, errors.Wrapf(err, "couldn't get parent channel %s of thread %s", parentID, channel.ID())
		}
		parentChannel, ok := parent.(discord.GuildChannel)
		if !ok {
			return false, errors.Errorf("couldn't get guild channel from channel id %s", parentID)
		}
		target = parentChannel

	case discord.ChannelTypeGuildText, discord.ChannelTypeGuildNews:
		target = channel

	default:
		return false, nil
	}

	// overwrites change without notice, always evaluate against a fresh guild
	guild, err := d.GetGuild(channel.GuildID())
	if err != nil {
		return false, errors.Wrapf(err, "couldn't get guild %s", channel.GuildID())
	}
	return permissionsIn(guild, member, target).Has(requiredPermissions), nil
}

// permissionsIn computes the effective permission set of member in
// channel from immutable snapshots: guild roles and owner, the member's
// role ids and the channel's overwrites. No I/O happens here.
func permissionsIn(guild *discord.RestGuild, member discord.Member, channel discord.GuildChannel) discord.Permissions {
	if guild.OwnerID == member.User.ID {
		return discord.PermissionsAll
	}

	var base discord.Permissions
	for _, role := range guild.Roles {
		if role.ID == guild.ID {
			base = base.Add(role.Permissions)
			break
		}
	}
	for _, roleID := range member.RoleIDs {
		for _, role := range guild.Roles {
			if role.ID == roleID {
				base = base.Add(role.Permissions)
				break
			}
		}
	}
	if base.Has(discord.PermissionAdministrator) {
		return discord.PermissionsAll
	}

	overwrites := channel.PermissionOverwrites()

	for _, overwrite := range overwrites {
		if o, ok := overwrite.(discord.RolePermissionOverwrite); ok && o.RoleID == guild.ID {
			base = base.Remove(o.Deny).Add(o.Allow)
			break
		}
	}

	var allow, deny discord.Permissions
	for _, overwrite := range overwrites {
		o, ok := overwrite.(discord.RolePermissionOverwrite)
		if !ok || o.RoleID == guild.ID {
			continue
		}
		for _, roleID := range member.RoleIDs {
			if o.RoleID == roleID {
				allow = allow.Add(o.Allow)
				deny = deny.Add(o.Deny)
				break
			}
		}
	}
	base = base.Remove(deny).Add(allow)

	for _, overwrite := range overwrites {
		if o, ok := overwrite.(discord.MemberPermissionOverwrite); ok && o.UserID == member.User.ID {
			base = base.Remove(o.Deny).Add(o.Allow)
			break
		}
	}

	return base
}
