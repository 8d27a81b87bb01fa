package discord

import (
	"testing"

	"rolehub/internal/bot"

	"github.com/bwmarrin/discordgo"
)

func TestReactionFromBlacklistedGuildIsDropped(t *testing.T) {
	b := testBot(t)
	if err := b.blacklist.Add("900000000000000003"); err != nil {
		t.Fatalf("seed blacklist: %v", err)
	}

	// The nil session makes any processing past the guard fail loudly.
	b.onMessageReactionAdd(nil, &discordgo.MessageReactionAdd{
		MessageReaction: &discordgo.MessageReaction{
			GuildID:   "900000000000000003",
			ChannelID: "900000000000000002",
			MessageID: "900000000000000001",
			UserID:    "222222222222222222",
			Emoji:     discordgo.Emoji{Name: bot.TrashEmoji},
		},
	})
}

func TestShouldTrashDelete(t *testing.T) {
	tests := []struct {
		name          string
		emoji         string
		reactorIsSelf bool
		reactorIsBot  bool
		botAuthored   bool
		tracked       bool
		want          bool
	}{
		{"all gates pass", bot.TrashEmoji, false, false, true, true, true},
		{"wrong emoji", "👍", false, false, true, true, false},
		{"own reaction", bot.TrashEmoji, true, false, true, true, false},
		{"bot reactor", bot.TrashEmoji, false, true, true, true, false},
		{"foreign author", bot.TrashEmoji, false, false, false, true, false},
		{"untracked message", bot.TrashEmoji, false, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldTrashDelete(tt.emoji, tt.reactorIsSelf, tt.reactorIsBot, tt.botAuthored, tt.tracked)
			if got != tt.want {
				t.Errorf("shouldTrashDelete = %v, want %v", got, tt.want)
			}
		})
	}
}
