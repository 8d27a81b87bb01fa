package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

type fakeSlash struct {
	name  string
	guild string
}

func (c *fakeSlash) Name() string              { return c.name }
func (c *fakeSlash) Description() string       { return "fake" }
func (c *fakeSlash) Run(ctx interface{}) error { return nil }
func (c *fakeSlash) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.name, Description: "fake"}
}
func (c *fakeSlash) TargetGuildID() string { return c.guild }

type fakePrefix struct {
	name    string
	aliases []string
	spec    []Arg
}

func (c *fakePrefix) Name() string              { return c.name }
func (c *fakePrefix) Description() string       { return "fake" }
func (c *fakePrefix) Run(ctx interface{}) error { return nil }
func (c *fakePrefix) PrefixEnabled() bool       { return true }
func (c *fakePrefix) Aliases() []string         { return c.aliases }
func (c *fakePrefix) ArgSpec() []Arg            { return c.spec }

type fakeInvalid struct{}

func (c *fakeInvalid) Name() string              { return "invalid" }
func (c *fakeInvalid) Description() string       { return "fake" }
func (c *fakeInvalid) Run(ctx interface{}) error { return nil }

func TestLoadClassifiesScopes(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeSlash{name: "global"})
	r.Register(&fakeSlash{name: "scoped", guild: "g1"})
	r.Register(&fakePrefix{name: "text", aliases: []string{"t"}})

	tables := r.Load()

	if _, ok := tables.Global["global"]; !ok {
		t.Error("expected global command in global table")
	}
	if _, ok := tables.Global["scoped"]; ok {
		t.Error("guild-scoped command must not appear in global table")
	}
	if _, ok := tables.Guild["g1"]["scoped"]; !ok {
		t.Error("expected scoped command under guild g1")
	}
	if _, ok := tables.Prefix["text"]; !ok {
		t.Error("expected prefix command in prefix table")
	}
	if _, ok := tables.Prefix["t"]; !ok {
		t.Error("expected alias in prefix table")
	}
}

func TestLoadSkipsInvalidWithoutAborting(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeInvalid{})
	r.Register(&fakeSlash{name: "ok"})

	tables := r.Load()

	if len(tables.Global) != 1 {
		t.Errorf("expected 1 global command, got %d", len(tables.Global))
	}
	if _, ok := tables.Global["ok"]; !ok {
		t.Error("valid command must survive an invalid sibling")
	}
}

func TestLoadDuplicateNameIsDiscoverable(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeSlash{name: "dup"})
	r.Register(&fakeSlash{name: "dup"})

	tables := r.Load()

	// Last-loaded wins, but the name must still resolve. No silent drop.
	if _, ok := tables.Global["dup"]; !ok {
		t.Error("duplicate name must remain discoverable")
	}
}

func TestLoadGuildNamespaceIsSeparate(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeSlash{name: "stats"})
	r.Register(&fakeSlash{name: "stats", guild: "g1"})

	tables := r.Load()

	if _, ok := tables.Global["stats"]; !ok {
		t.Error("global stats missing")
	}
	if _, ok := tables.Guild["g1"]["stats"]; !ok {
		t.Error("guild stats missing")
	}
}

func TestPrefixEntryCarriesSpec(t *testing.T) {
	r := NewRegistry()
	spec := []Arg{{Name: "sides", Type: ArgInteger, Required: true}}
	r.Register(&fakePrefix{name: "dice", spec: spec})

	tables := r.Load()

	entry, ok := tables.Prefix["dice"]
	if !ok {
		t.Fatal("dice not loaded")
	}
	if len(entry.Spec) != 1 || entry.Spec[0].Name != "sides" {
		t.Errorf("spec = %+v", entry.Spec)
	}
}
