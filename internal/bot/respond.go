// Package bot holds small discordgo helpers shared by the dispatcher and
// the commands: interaction responses and track-aware sends.
package bot

import (
	"log"

	"rolehub/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// TrashEmoji is the reaction any user can add to delete a tracked bot message.
const TrashEmoji = "🗑️"

const EmbedColor = 0x5865f2

// Respond sends a plain channel-message interaction response.
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

// RespondEphemeral sends an interaction response only the invoker can see.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondEmbedEphemeral sends an ephemeral embed interaction response.
func RespondEmbedEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, e *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{e},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondEmbedTracked sends a durable embed interaction response, reacts
// with the trash marker and registers it for user-triggered deletion.
// Reaction and tracking failures are logged, not fatal: the reply itself
// already succeeded.
func RespondEmbedTracked(s *discordgo.Session, i *discordgo.InteractionCreate, store *storage.Storage, e *discordgo.MessageEmbed) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{e},
		},
	})
	if err != nil {
		return err
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("[WARN] Failed to fetch interaction response: %v", err)
		return nil
	}
	markDeletable(s, store, msg.ChannelID, msg.ID)
	return nil
}

// SendEmbedTracked sends a channel embed, reacts with the trash marker and
// registers the message for deletion.
func SendEmbedTracked(s *discordgo.Session, store *storage.Storage, channelID string, e *discordgo.MessageEmbed) (*discordgo.Message, error) {
	msg, err := s.ChannelMessageSendEmbed(channelID, e)
	if err != nil {
		return nil, err
	}
	markDeletable(s, store, channelID, msg.ID)
	return msg, nil
}

// ReplyEmbedTracked replies to a message with an embed and tracks the reply.
func ReplyEmbedTracked(s *discordgo.Session, store *storage.Storage, m *discordgo.Message, e *discordgo.MessageEmbed) (*discordgo.Message, error) {
	msg, err := s.ChannelMessageSendEmbedReply(m.ChannelID, e, m.Reference())
	if err != nil {
		return nil, err
	}
	markDeletable(s, store, m.ChannelID, msg.ID)
	return msg, nil
}

func markDeletable(s *discordgo.Session, store *storage.Storage, channelID, messageID string) {
	if err := s.MessageReactionAdd(channelID, messageID, TrashEmoji); err != nil {
		log.Printf("[WARN] Failed to add trash reaction to %s: %v", messageID, err)
	}
	if err := store.Track(messageID); err != nil {
		log.Printf("[WARN] Failed to track message %s: %v", messageID, err)
	}
}
