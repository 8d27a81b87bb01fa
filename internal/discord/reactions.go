package discord

import (
	"fmt"
	"log"

	"rolehub/internal/bot"

	"github.com/bwmarrin/discordgo"
)

// shouldTrashDelete is the full gating decision for a reaction event: only
// the trash marker, added by a human other than the bot, on a tracked
// message this bot authored, triggers deletion.
func shouldTrashDelete(emoji string, reactorIsSelf, reactorIsBot, botAuthored, tracked bool) bool {
	if emoji != bot.TrashEmoji {
		return false
	}
	if reactorIsSelf || reactorIsBot {
		return false
	}
	if !botAuthored {
		return false
	}
	return tracked
}

// reactorIsBot resolves whether the reacting user is a bot. Guild events
// carry a Member; when it is absent the user is fetched instead, so bot
// reactions never slip through on a thin event.
func reactorIsBot(s *discordgo.Session, r *discordgo.MessageReactionAdd) (bool, error) {
	if r.Member != nil && r.Member.User != nil {
		return r.Member.User.Bot, nil
	}
	u, err := s.User(r.UserID)
	if err != nil {
		return false, fmt.Errorf("fetch reacting user %s: %w", r.UserID, err)
	}
	return u.Bot, nil
}

// onMessageReactionAdd implements the trash-deletion protocol. Deletion is
// best-effort: a failed delete is logged and the message simply stays
// tracked.
func (b *Bot) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID != "" && b.blacklist.IsBlacklisted(r.GuildID) {
		log.Printf("[DEBUG] Dropping reaction from blacklisted guild %s", r.GuildID)
		return
	}

	// Cheap pre-filter so unrelated reactions cost no lookups. The full
	// decision is still shouldTrashDelete below.
	if r.Emoji.Name != bot.TrashEmoji || r.UserID == s.State.User.ID {
		return
	}

	isBot, err := reactorIsBot(s, r)
	if err != nil {
		log.Printf("[WARN] Could not resolve reacting user: %v", err)
		return
	}

	msg, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("[WARN] Failed to fetch reacted message %s: %v", r.MessageID, err)
		return
	}
	botAuthored := msg.Author != nil && msg.Author.ID == s.State.User.ID

	tracked, err := b.storage.IsTracked(r.MessageID)
	if err != nil {
		log.Printf("[ERR] Tracked-message lookup failed for %s: %v", r.MessageID, err)
		return
	}

	if !shouldTrashDelete(r.Emoji.Name, r.UserID == s.State.User.ID, isBot, botAuthored, tracked) {
		return
	}

	if err := s.ChannelMessageDelete(r.ChannelID, r.MessageID); err != nil {
		log.Printf("[ERR] Failed to delete message %s: %v", r.MessageID, err)
		return
	}
	if err := b.storage.Untrack(r.MessageID); err != nil {
		log.Printf("[ERR] Failed to untrack deleted message %s: %v", r.MessageID, err)
	}
	log.Printf("[TRASH] User %s deleted message %s", r.UserID, r.MessageID)
}
