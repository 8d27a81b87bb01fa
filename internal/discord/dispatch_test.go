package discord

import (
	"reflect"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		content  string
		prefix   string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{".dice 6 3", ".", "dice", []string{"6", "3"}, true},
		{".DICE 6", ".", "dice", []string{"6"}, true},
		{".ping", ".", "ping", nil, true},
		{".  ", ".", "", nil, false},
		{"hello there", ".", "", nil, false},
		{"!dice 6 3", ".", "", nil, false},
		{".roll   2d6   +1", ".", "roll", []string{"2d6", "+1"}, true},
	}

	for _, tt := range tests {
		name, args, ok := SplitCommand(tt.content, tt.prefix)
		if ok != tt.wantOK {
			t.Errorf("SplitCommand(%q) ok = %v, want %v", tt.content, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if name != tt.wantName {
			t.Errorf("SplitCommand(%q) name = %q, want %q", tt.content, name, tt.wantName)
		}
		if len(args) != 0 || len(tt.wantArgs) != 0 {
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("SplitCommand(%q) args = %v, want %v", tt.content, args, tt.wantArgs)
			}
		}
	}
}

// Blacklisted events must be dropped before any session or storage access.
// The nil session makes any traffic past the guard fail loudly.

func TestMessageFromBlacklistedGuildIsDropped(t *testing.T) {
	b := testBot(t)
	if err := b.blacklist.Add("900000000000000003"); err != nil {
		t.Fatalf("seed blacklist: %v", err)
	}

	m := adminMessage("222222222222222222")
	m.Content = ".dice 6 3"
	b.onMessageCreate(nil, m)
}

func TestInteractionFromBlacklistedGuildIsDropped(t *testing.T) {
	b := testBot(t)
	if err := b.blacklist.Add("900000000000000003"); err != nil {
		t.Fatalf("seed blacklist: %v", err)
	}

	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "900000000000000003",
		},
	}
	b.onInteractionCreate(nil, i)
}

func TestGuildIDPattern(t *testing.T) {
	valid := []string{"12345678901234567", "123456789012345678", "1234567890123456789"}
	for _, id := range valid {
		if !guildIDPattern.MatchString(id) {
			t.Errorf("expected %q to be a valid guild ID", id)
		}
	}
	invalid := []string{"", "abc", "1234", "12345678901234567890", "12345678901234567a"}
	for _, id := range invalid {
		if guildIDPattern.MatchString(id) {
			t.Errorf("expected %q to be rejected", id)
		}
	}
}
