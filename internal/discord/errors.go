package discord

import (
	"log"
	"runtime/debug"

	"rolehub/internal/bot"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

func errorEmbed(description string) *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetDescription("❌ " + description).
		SetColor(0xed4245).
		MessageEmbed
}

// handleMessageCommandNotFound replies to an unknown free-text command.
// The reply is a durable chat message, so it is tracked and deletable.
func (b *Bot) handleMessageCommandNotFound(s *discordgo.Session, m *discordgo.MessageCreate, name string) {
	log.Printf("[WARN] Unknown prefix command: %s", name)
	e := errorEmbed("Unknown or unavailable command.")
	if _, err := bot.ReplyEmbedTracked(s, b.storage, m.Message, e); err != nil {
		log.Printf("[ERR] Failed to send command-not-found reply: %v", err)
	}
}

// handleInteractionCommandNotFound sends the ephemeral variant. Ephemeral
// notices are not durable messages, so nothing is tracked.
func (b *Bot) handleInteractionCommandNotFound(s *discordgo.Session, i *discordgo.InteractionCreate, name string) {
	log.Printf("[WARN] Unknown slash command: %s", name)
	if err := bot.RespondEmbedEphemeral(s, i, errorEmbed("Unknown or unavailable command.")); err != nil {
		log.Printf("[ERR] Failed to send command-not-found response: %v", err)
	}
}

// handleMessageError is the central failure path for free-text handlers:
// full detail goes to the log, the user gets one generic notice.
func (b *Bot) handleMessageError(s *discordgo.Session, m *discordgo.MessageCreate, name string, err error) {
	log.Printf("[ERR] Command .%s failed: %v\n%s", name, err, debug.Stack())
	e := errorEmbed("An unexpected error occurred while running the command.")
	if _, rerr := bot.ReplyEmbedTracked(s, b.storage, m.Message, e); rerr != nil {
		log.Printf("[ERR] Failed to send error reply: %v", rerr)
	}
}

// handleInteractionError mirrors handleMessageError for slash commands.
func (b *Bot) handleInteractionError(s *discordgo.Session, i *discordgo.InteractionCreate, name string, err error) {
	log.Printf("[ERR] Command /%s failed: %v\n%s", name, err, debug.Stack())
	if rerr := bot.RespondEmbedEphemeral(s, i, errorEmbed("An unexpected error occurred while running the command.")); rerr != nil {
		log.Printf("[ERR] Failed to send error response: %v", rerr)
	}
}
