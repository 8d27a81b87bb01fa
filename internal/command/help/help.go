// Package help implements the command directory. Slash commands are shown
// as clickable mentions when their registered IDs are known from the
// catalogue cache.
package help

import (
	"fmt"
	"sort"
	"strings"

	"rolehub/internal/bot"
	"rolehub/internal/command"
	"rolehub/internal/config"
	"rolehub/internal/version"

	"github.com/bwmarrin/discordgo"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	prefix, cachePath := helpSettings(slash.Config)
	ids := command.LoadIDCache(cachePath)

	embed := &discordgo.MessageEmbed{
		Title:       version.AppName + " Help",
		Description: buildHelp(command.DefaultRegistry.GetAll(), ids, prefix),
		Color:       bot.EmbedColor,
	}
	return bot.RespondEmbedEphemeral(slash.Session, slash.Event, embed)
}

// helpSettings pulls the prefix and cache path from the dispatch config,
// with hard defaults when no config was threaded through.
func helpSettings(cfg *config.Config) (prefix, cachePath string) {
	if cfg == nil {
		return ".", command.DefaultIDCachePath
	}
	return cfg.Prefix, cfg.CommandCachePath
}

// buildHelp lists slash commands first, then free-text commands with their
// aliases. Commands reachable both ways appear in both sections.
func buildHelp(cmds []command.Command, ids map[string]string, prefix string) string {
	var slash, text []string

	for _, cmd := range cmds {
		if sp, ok := cmd.(command.SlashProvider); ok && sp.SlashDefinition() != nil {
			slash = append(slash, fmt.Sprintf("%s - %s", slashMention(cmd.Name(), ids), cmd.Description()))
		}
		if pp, ok := cmd.(command.PrefixProvider); ok && pp.PrefixEnabled() {
			name := fmt.Sprintf("`%s%s`", prefix, cmd.Name())
			if aliases := pp.Aliases(); len(aliases) > 0 {
				sort.Strings(aliases)
				for i, a := range aliases {
					aliases[i] = fmt.Sprintf("`%s%s`", prefix, a)
				}
				name += " (" + strings.Join(aliases, ", ") + ")"
			}
			text = append(text, fmt.Sprintf("%s - %s", name, cmd.Description()))
		}
	}

	var sb strings.Builder
	if len(slash) > 0 {
		sb.WriteString("**Slash commands**\n")
		sb.WriteString(strings.Join(slash, "\n"))
		sb.WriteString("\n\n")
	}
	if len(text) > 0 {
		sb.WriteString("**Text commands**\n")
		sb.WriteString(strings.Join(text, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// slashMention renders </name:id> when the command's ID is cached, which
// Discord displays as a clickable mention. Falls back to plain text.
func slashMention(name string, ids map[string]string) string {
	if id, ok := ids[name]; ok && id != "" {
		return fmt.Sprintf("</%s:%s>", name, id)
	}
	return "`/" + name + "`"
}

func init() {
	command.DefaultRegistry.Register(&HelpCommand{})
}
