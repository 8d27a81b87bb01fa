package discord

import (
	"context"
	"fmt"
	"log"
	"sort"

	"rolehub/internal/command"

	"github.com/bwmarrin/discordgo"
)

// syncCommands resynchronizes the platform command catalogue on boot:
// global commands in one bulk overwrite, guild-scoped commands per target
// guild, paced by the shared rate limiter. Each scope is hashed and checked
// against data/commands/<scope>.json; an unchanged scope skips the
// overwrite entirely. On a successful global sync the name→ID cache file
// is rewritten for the help command.
func (b *Bot) syncCommands(ctx context.Context) error {
	appID, err := b.appID()
	if err != nil {
		return err
	}

	defs := slashDefinitions(b.tables.Global)
	changed, hashes := catalogueChanged(loadCommandHashes(b.hashDir, globalScope), defs)
	if !changed {
		log.Printf("[INFO] Global slash commands unchanged, skipping sync")
	} else {
		log.Printf("[INFO] Registering %d global slash command(s)...", len(defs))
		registered, err := b.dg.ApplicationCommandBulkOverwrite(appID, "", defs)
		if err != nil {
			return fmt.Errorf("register global commands: %w", err)
		}
		log.Printf("[DONE] Registered %d global slash command(s)", len(registered))
		saveCommandHashes(b.hashDir, globalScope, hashes)

		entries := make([]command.IDCacheEntry, 0, len(registered))
		for _, c := range registered {
			entries = append(entries, command.IDCacheEntry{Name: c.Name, ID: c.ID})
		}
		if err := command.SaveIDCache(b.cfg.CommandCachePath, entries); err != nil {
			log.Printf("[WARN] Failed to write command cache: %v", err)
		} else {
			log.Printf("[INFO] Command cache written to %s", b.cfg.CommandCachePath)
		}
	}

	for _, guildID := range b.tables.GuildIDs() {
		if err := b.limiter.Wait(ctx); err != nil {
			return err
		}
		if err := b.syncGuildCommands(ctx, guildID); err != nil {
			log.Printf("[ERR] Guild command sync failed for %s: %v", guildID, err)
		}
	}
	return nil
}

// syncGuildCommands overwrites the guild-scoped command set for one guild.
// Guilds with no scoped commands are left untouched.
func (b *Bot) syncGuildCommands(ctx context.Context, guildID string) error {
	cmds := b.tables.Guild[guildID]
	if len(cmds) == 0 {
		return nil
	}
	if b.blacklist.IsBlacklisted(guildID) {
		log.Printf("[INFO] Skipping command sync for blacklisted guild %s", guildID)
		return nil
	}

	appID, err := b.appID()
	if err != nil {
		return err
	}

	defs := slashDefinitions(cmds)
	changed, hashes := catalogueChanged(loadCommandHashes(b.hashDir, guildID), defs)
	if !changed {
		log.Printf("[INFO] Commands unchanged for guild %s, skipping sync", guildID)
		return nil
	}

	registered, err := b.dg.ApplicationCommandBulkOverwrite(appID, guildID, defs)
	if err != nil {
		return fmt.Errorf("register guild commands: %w", err)
	}
	saveCommandHashes(b.hashDir, guildID, hashes)
	log.Printf("[DONE] Registered %d command(s) for guild %s", len(registered), guildID)
	return nil
}

// slashDefinitions extracts ApplicationCommand definitions in name order.
// Commands only reach these tables through SlashProvider, so the assertion
// cannot fail for well-formed tables.
func slashDefinitions(cmds map[string]command.Command) []*discordgo.ApplicationCommand {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, name := range names {
		sp, ok := cmds[name].(command.SlashProvider)
		if !ok {
			continue
		}
		if def := sp.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			defs = append(defs, def)
		}
	}
	return defs
}
