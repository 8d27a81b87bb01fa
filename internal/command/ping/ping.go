// Package ping implements the latency check.
package ping

import (
	"fmt"

	"rolehub/internal/bot"
	"rolehub/internal/command"

	"github.com/bwmarrin/discordgo"
)

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Check bot latency" }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *PingCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	latency := slash.Session.HeartbeatLatency().Milliseconds()
	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("🏓 Pong! %dms", latency),
		Color:       bot.EmbedColor,
	}
	return bot.RespondEmbedTracked(slash.Session, slash.Event, slash.Storage, embed)
}

func init() {
	command.DefaultRegistry.Register(&PingCommand{})
}
