package discord

import (
	"log"
	"strings"

	"rolehub/internal/bot"
	"rolehub/internal/command"
	"rolehub/internal/panels"

	"github.com/bwmarrin/discordgo"
)

// SplitCommand extracts a free-text command invocation from message content.
// The first whitespace-delimited token after the prefix selects the handler,
// case-insensitively; the rest are raw argument tokens.
func SplitCommand(content, prefix string) (name string, args []string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// onMessageCreate runs the free-text half of the dispatch pipeline.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	if b.blacklist.IsBlacklisted(m.GuildID) {
		log.Printf("[DEBUG] Dropping message from blacklisted guild %s", m.GuildID)
		return
	}

	name, raw, ok := SplitCommand(m.Content, b.cfg.Prefix)
	if !ok {
		return
	}

	if b.handleBlacklistCommand(s, m, name, raw) {
		return
	}

	entry, found := b.tables.Prefix[name]
	if !found {
		b.handleMessageCommandNotFound(s, m, name)
		return
	}

	args, err := command.ParseArgs(raw, entry.Spec)
	if err != nil {
		log.Printf("[ERR] Argument parse failed for .%s: %v", name, err)
		e := errorEmbed("Invalid arguments: " + err.Error())
		if _, rerr := bot.ReplyEmbedTracked(s, b.storage, m.Message, e); rerr != nil {
			log.Printf("[ERR] Failed to send argument error reply: %v", rerr)
		}
		return
	}

	ctx := &command.MessageContext{
		Session: s,
		Event:   m,
		Storage: b.storage,
		Args:    args,
		Raw:     raw,
	}
	if err := entry.Cmd.Run(ctx); err != nil {
		b.handleMessageError(s, m, entry.Cmd.Name(), err)
		return
	}
	logUserAction("CMD", entry.Cmd.Name(), m.Author.Username, m.Author.ID, m.GuildID)
}

// onInteractionCreate runs the structured half: slash commands and
// component selections.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID != "" && b.blacklist.IsBlacklisted(i.GuildID) {
		log.Printf("[DEBUG] Dropping interaction from blacklisted guild %s", i.GuildID)
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.dispatchSlash(s, i)
	case discordgo.InteractionMessageComponent:
		b.dispatchComponent(s, i)
	default:
		log.Printf("[DEBUG] Ignoring interaction type %d", i.Type)
	}
}

func (b *Bot) dispatchSlash(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	cmd, ok := b.tables.Global[name]
	if !ok {
		if guildCmds := b.tables.Guild[i.GuildID]; guildCmds != nil {
			cmd, ok = guildCmds[name]
		}
	}
	if !ok {
		b.handleInteractionCommandNotFound(s, i, name)
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Storage: b.storage,
		Panels:  b.panels,
		Config:  b.cfg,
	}
	if err := cmd.Run(ctx); err != nil {
		b.handleInteractionError(s, i, cmd.Name(), err)
		return
	}

	user := resolveUser(i)
	logUserAction("CMD", cmd.Name(), user.Username, user.ID, i.GuildID)
}

func (b *Bot) dispatchComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	if strings.HasPrefix(customID, panels.CustomIDPrefix) {
		if i.Message != nil && !b.panels.Attached(i.Message.ID) {
			log.Printf("[DEBUG] Selection on panel without live listener: %s", i.Message.ID)
			return
		}
		if err := b.panels.HandleSelect(s, i); err != nil {
			log.Printf("[ERR] Role panel selection failed: %v", err)
		}
		return
	}

	log.Printf("[DEBUG] No handler for component customID: %s", customID)
}

// resolveUser extracts the acting user from an interaction, which carries
// a Member in guilds and a bare User in DMs.
func resolveUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{ID: "unknown", Username: "unknown"}
}

// logUserAction writes the structured action record emitted after every
// successful dispatch.
func logUserAction(actionType, details, username, userID, guildID string) {
	guildInfo := ""
	if guildID != "" {
		guildInfo = " in guild " + guildID
	}
	log.Printf("[%s] %s by %s (ID: %s)%s", actionType, details, username, userID, guildInfo)
}
