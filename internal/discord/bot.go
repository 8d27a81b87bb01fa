// Package discord wires the gateway session to the dispatch pipeline:
// slash interactions, free-text commands, component selections and the
// trash-reaction deletion protocol all enter here.
package discord

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"rolehub/internal/blacklist"
	"rolehub/internal/command"
	"rolehub/internal/config"
	"rolehub/internal/panels"
	"rolehub/internal/storage"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

type Bot struct {
	dg        *discordgo.Session
	cfg       *config.Config
	storage   *storage.Storage
	blacklist *blacklist.Cache
	panels    *panels.Manager
	tables    *command.Tables
	limiter   *rate.Limiter
	hashDir   string
}

// New builds a bot around already-initialized collaborators. The command
// registry is classified once here; dispatch only does table lookups.
func New(cfg *config.Config, store *storage.Storage, bl *blacklist.Cache) *Bot {
	return &Bot{
		cfg:       cfg,
		storage:   store,
		blacklist: bl,
		panels:    panels.NewManager(store),
		tables:    command.DefaultRegistry.Load(),
		limiter:   rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		hashDir:   filepath.Join("data", "commands"),
	}
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onMessageReactionAdd)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onGuildDelete)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Closing Discord session...")
	return nil
}

// onReady resynchronizes the slash catalogue and rebuilds the live panel
// listener set from storage.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Logged in as %s (ID: %s)", r.User.Username, r.User.ID)

	if b.cfg.InitSlashCommands {
		if err := b.syncCommands(context.Background()); err != nil {
			log.Printf("[ERR] Slash command sync failed: %v", err)
		}
	} else {
		log.Println("[INFO] Slash command sync skipped")
	}

	b.panels.Replay(s)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if b.blacklist.IsBlacklisted(g.Guild.ID) {
		log.Printf("[INFO] Leaving blacklisted guild: %s (%s)", g.Guild.ID, g.Guild.Name)
		if err := s.GuildLeave(g.Guild.ID); err != nil {
			log.Printf("[ERR] Failed to leave guild %s: %v", g.Guild.ID, err)
		}
		return
	}

	log.Printf("[INFO] Guild available: %s (%s), %d members", g.Guild.ID, g.Guild.Name, g.Guild.MemberCount)

	if b.cfg.InitSlashCommands {
		if err := b.syncGuildCommands(context.Background(), g.Guild.ID); err != nil {
			log.Printf("[ERR] Guild command sync failed for %s: %v", g.Guild.ID, err)
		}
	}
}

func (b *Bot) onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	log.Printf("[INFO] Removed from guild: %s", g.Guild.ID)
}

// appID returns the bot's application ID, fetching it if State has none yet.
func (b *Bot) appID() (string, error) {
	if id := b.dg.State.User.ID; id != "" {
		return id, nil
	}
	u, err := b.dg.User("@me")
	if err != nil {
		return "", fmt.Errorf("fetch bot user: %w", err)
	}
	return u.ID, nil
}
