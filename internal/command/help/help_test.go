package help

import (
	"strings"
	"testing"

	"rolehub/internal/command"
	"rolehub/internal/config"

	"github.com/bwmarrin/discordgo"
)

type fakeSlash struct{ name string }

func (f *fakeSlash) Name() string              { return f.name }
func (f *fakeSlash) Description() string       { return "a slash command" }
func (f *fakeSlash) Run(ctx interface{}) error { return nil }
func (f *fakeSlash) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: f.name}
}

type fakePrefix struct{ name string }

func (f *fakePrefix) Name() string              { return f.name }
func (f *fakePrefix) Description() string       { return "a text command" }
func (f *fakePrefix) Run(ctx interface{}) error { return nil }
func (f *fakePrefix) PrefixEnabled() bool       { return true }
func (f *fakePrefix) Aliases() []string         { return []string{"al"} }
func (f *fakePrefix) ArgSpec() []command.Arg    { return nil }

func TestBuildHelpSections(t *testing.T) {
	cmds := []command.Command{&fakeSlash{name: "alpha"}, &fakePrefix{name: "beta"}}
	ids := map[string]string{"alpha": "123"}

	out := buildHelp(cmds, ids, ".")

	if !strings.Contains(out, "</alpha:123>") {
		t.Errorf("expected cached slash mention in output:\n%s", out)
	}
	if !strings.Contains(out, "`.beta` (`.al`)") {
		t.Errorf("expected prefixed text command with alias in output:\n%s", out)
	}
	if !strings.Contains(out, "**Slash commands**") || !strings.Contains(out, "**Text commands**") {
		t.Errorf("expected both sections in output:\n%s", out)
	}
}

func TestHelpSettingsUseDispatchConfig(t *testing.T) {
	prefix, cachePath := helpSettings(nil)
	if prefix != "." || cachePath != command.DefaultIDCachePath {
		t.Errorf("nil config should fall back to defaults, got %q %q", prefix, cachePath)
	}

	cfg := &config.Config{Prefix: "!", CommandCachePath: "elsewhere/cache.json"}
	prefix, cachePath = helpSettings(cfg)
	if prefix != "!" || cachePath != "elsewhere/cache.json" {
		t.Errorf("config values should win, got %q %q", prefix, cachePath)
	}
}

func TestSlashMentionFallsBack(t *testing.T) {
	if got := slashMention("dice", nil); got != "`/dice`" {
		t.Errorf("expected plain fallback, got %q", got)
	}
	if got := slashMention("dice", map[string]string{"dice": "42"}); got != "</dice:42>" {
		t.Errorf("expected mention, got %q", got)
	}
}
