// Package stats implements the home-guild status card. Unlike the other
// commands it carries configuration, so main registers it explicitly
// instead of relying on init().
package stats

import (
	"fmt"
	"time"

	"rolehub/internal/bot"
	"rolehub/internal/command"
	"rolehub/internal/version"

	"github.com/bwmarrin/discordgo"
)

var started = time.Now()

// StatsCommand is scoped to a single guild via GuildID.
type StatsCommand struct {
	GuildID string
}

func (c *StatsCommand) Name() string        { return "stats" }
func (c *StatsCommand) Description() string { return "Show bot and server statistics" }

func (c *StatsCommand) TargetGuildID() string { return c.GuildID }

func (c *StatsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *StatsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	session := slash.Session
	event := slash.Event

	guild, err := session.State.Guild(event.GuildID)
	if err != nil {
		guild, err = session.Guild(event.GuildID)
		if err != nil {
			return fmt.Errorf("fetch guild %s: %w", event.GuildID, err)
		}
	}

	uptime := time.Since(started).Round(time.Second)

	embed := &discordgo.MessageEmbed{
		Title: "📊 " + guild.Name,
		Color: bot.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "Channels", Value: fmt.Sprintf("%d", len(guild.Channels)), Inline: true},
			{Name: "Roles", Value: fmt.Sprintf("%d", len(guild.Roles)), Inline: true},
			{Name: "Uptime", Value: uptime.String(), Inline: true},
			{Name: "Version", Value: version.Version, Inline: true},
		},
	}
	return bot.RespondEmbedTracked(session, event, slash.Storage, embed)
}
