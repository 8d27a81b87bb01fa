// Package role implements role panel creation: a persistent message with a
// select menu any member can use to toggle the offered roles on themselves.
package role

import (
	"fmt"
	"log"

	"rolehub/internal/bot"
	"rolehub/internal/command"
	"rolehub/internal/panels"
	"rolehub/internal/storage"

	"github.com/bwmarrin/discordgo"
)

const maxRoles = 5

type RolePanelCommand struct{}

func (c *RolePanelCommand) Name() string        { return "role" }
func (c *RolePanelCommand) Description() string { return "Create a self-service role panel" }

func (c *RolePanelCommand) SlashDefinition() *discordgo.ApplicationCommand {
	manageRoles := int64(discordgo.PermissionManageRoles)

	options := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title",
			Description: "Panel title",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "description",
			Description: "Panel description",
			Required:    false,
		},
	}
	for i := 1; i <= maxRoles; i++ {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        fmt.Sprintf("role%d", i),
			Description: fmt.Sprintf("Role option %d", i),
			Required:    i == 1,
		})
	}

	return &discordgo.ApplicationCommand{
		Name:                     c.Name(),
		Description:              c.Description(),
		Type:                     discordgo.ChatApplicationCommand,
		Options:                  options,
		DefaultMemberPermissions: &manageRoles,
	}
}

func (c *RolePanelCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	session := slash.Session
	event := slash.Event
	guildID := event.GuildID

	if guildID == "" {
		return bot.RespondEphemeral(session, event, "Role panels only work inside a server.")
	}
	if event.Member == nil || event.Member.Permissions&discordgo.PermissionManageRoles == 0 {
		return bot.RespondEphemeral(session, event, "You need the Manage Roles permission to create a panel.")
	}

	title := "Pick your roles"
	description := "Select a role below to toggle it on or off."
	var roles []*discordgo.Role

	for _, opt := range event.ApplicationCommandData().Options {
		switch opt.Name {
		case "title":
			title = opt.StringValue()
		case "description":
			description = opt.StringValue()
		default:
			roles = append(roles, opt.RoleValue(session, guildID))
		}
	}

	bindings := dedupeRoles(roles)
	if len(bindings) == 0 {
		return bot.RespondEphemeral(session, event, "Pick at least one role for the panel.")
	}

	menuOptions := make([]discordgo.SelectMenuOption, 0, len(bindings))
	for _, b := range bindings {
		menuOptions = append(menuOptions, discordgo.SelectMenuOption{
			Label: b.Label,
			Value: b.ID,
		})
	}

	msg, err := session.ChannelMessageSendComplex(event.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       title,
			Description: description,
			Color:       bot.EmbedColor,
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    panels.CustomID(guildID),
						Placeholder: "Choose a role",
						Options:     menuOptions,
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send role panel: %w", err)
	}

	// The panel message exists either way. A failed persist only costs the
	// panel its restart survival, so it is logged and the panel goes live.
	panel := storage.RolePanel{
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
		GuildID:   guildID,
		Roles:     bindings,
	}
	if err := slash.Storage.AddRolePanel(panel); err != nil {
		log.Printf("[ERR] Failed to persist role panel %s: %v", msg.ID, err)
	}
	slash.Panels.Attach(msg.ID)

	log.Printf("[ROLE_PANEL] Created panel %s in guild %s with %d role(s)", msg.ID, guildID, len(bindings))
	return bot.RespondEphemeral(session, event, "Role panel created.")
}

// dedupeRoles drops nil entries and repeated role IDs, keeping first
// occurrence order.
func dedupeRoles(roles []*discordgo.Role) []storage.RoleBinding {
	seen := make(map[string]struct{}, len(roles))
	out := make([]storage.RoleBinding, 0, len(roles))
	for _, r := range roles {
		if r == nil {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, storage.RoleBinding{ID: r.ID, Label: r.Name})
	}
	return out
}

func init() {
	command.DefaultRegistry.Register(&RolePanelCommand{})
}
