package discord

import (
	"log"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var guildIDPattern = regexp.MustCompile(`^\d{17,19}$`)

// handleBlacklistCommand intercepts the owner-only blacklist admin
// commands (.sb <guildID> to suppress, .sub <guildID> to unsuppress)
// before regular prefix dispatch. The caller has already split the
// message content. Returns true when the message was consumed as an
// admin command, whatever the outcome.
func (b *Bot) handleBlacklistCommand(s *discordgo.Session, m *discordgo.MessageCreate, name string, args []string) bool {
	if name != "sb" && name != "sub" {
		return false
	}

	if !b.cfg.IsOwner(m.Author.ID) {
		log.Printf("[WARN] Unauthorized user %s (%s) attempted admin command .%s", m.Author.Username, m.Author.ID, name)
		return true
	}

	if len(args) == 0 || !guildIDPattern.MatchString(args[0]) {
		log.Printf("[WARN] Invalid guild ID for .%s: %s", name, strings.Join(args, " "))
		return true
	}
	guildID := args[0]

	// Remove the admin command from the channel, best-effort.
	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		log.Printf("[WARN] Failed to delete admin command message: %v", err)
	}

	var err error
	if name == "sb" {
		err = b.blacklist.Add(guildID)
	} else {
		err = b.blacklist.Remove(guildID)
	}
	if err != nil {
		log.Printf("[ERR] Blacklist update failed: %v", err)
	}
	return true
}
