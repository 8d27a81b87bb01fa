package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "rolehub/internal/command/coinflip"
	_ "rolehub/internal/command/dice"
	_ "rolehub/internal/command/help"
	_ "rolehub/internal/command/ping"
	_ "rolehub/internal/command/role"
	_ "rolehub/internal/command/userinfo"

	"rolehub/internal/blacklist"
	"rolehub/internal/command"
	"rolehub/internal/command/stats"
	"rolehub/internal/config"
	"rolehub/internal/discord"
	"rolehub/internal/storage"
	v "rolehub/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	bl := blacklist.New(cfg.BlacklistPath)
	if err := bl.Refresh(); err != nil {
		log.Fatal(err)
	}
	go bl.Poll(ctx, cfg.BlacklistInterval)

	if cfg.HomeGuildID != "" {
		command.DefaultRegistry.Register(&stats.StatsCommand{GuildID: cfg.HomeGuildID})
	}

	bot := discord.New(cfg, store, bl)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Fatal("[ERR] Discord bot error: ", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
