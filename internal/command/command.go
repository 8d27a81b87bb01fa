// Package command holds the transport-facing command contract and the
// registry that classifies commands at load time. Individual commands live
// in subpackages and self-register via init().
package command

import (
	"rolehub/internal/config"
	"rolehub/internal/panels"
	"rolehub/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Command is the universal contract: identity plus execution. How a command
// is registered and dispatched is decided by the provider interfaces below.
type Command interface {
	Name() string
	Description() string
	Run(ctx interface{}) error
}

// SlashProvider marks a command that handles structured interactions.
// Without a GuildProvider it registers globally.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// GuildProvider restricts a slash command to a single guild.
type GuildProvider interface {
	TargetGuildID() string
}

// PrefixProvider marks a command that opts into free-text dispatch.
// ArgSpec may be nil, in which case the raw tokens are passed through.
type PrefixProvider interface {
	PrefixEnabled() bool
	Aliases() []string
	ArgSpec() []Arg
}

// Contexts the dispatcher passes to Run. A command type-asserts to the
// shapes it supports.

type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Storage *storage.Storage
	Panels  *panels.Manager
	Config  *config.Config
}

type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Storage *storage.Storage
	Args    map[string]any // parsed against ArgSpec; nil for schema-less commands
	Raw     []string       // tokens after the command name, always set
}
