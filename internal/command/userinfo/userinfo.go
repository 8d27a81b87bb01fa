// Package userinfo implements the user lookup card.
package userinfo

import (
	"fmt"

	"rolehub/internal/bot"
	"rolehub/internal/command"

	"github.com/bwmarrin/discordgo"
)

type UserInfoCommand struct{}

func (c *UserInfoCommand) Name() string        { return "userinfo" }
func (c *UserInfoCommand) Description() string { return "Show details about a user" }

func (c *UserInfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "User to look up (defaults to you)",
				Required:    false,
			},
		},
	}
}

func (c *UserInfoCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	session := slash.Session
	event := slash.Event

	var user *discordgo.User
	for _, opt := range event.ApplicationCommandData().Options {
		if opt.Name == "user" {
			user = opt.UserValue(session)
		}
	}
	if user == nil {
		if event.Member != nil {
			user = event.Member.User
		} else {
			user = event.User
		}
	}
	if user == nil {
		return bot.RespondEphemeral(session, event, "Couldn't work out which user you mean.")
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "ID", Value: user.ID, Inline: true},
		{Name: "Bot", Value: yesNo(user.Bot), Inline: true},
	}
	if created, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Account created",
			Value:  created.UTC().Format("2006-01-02 15:04 UTC"),
			Inline: true,
		})
	}
	if event.GuildID != "" {
		if member, err := session.GuildMember(event.GuildID, user.ID); err == nil && !member.JoinedAt.IsZero() {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   "Joined server",
				Value:  member.JoinedAt.UTC().Format("2006-01-02 15:04 UTC"),
				Inline: true,
			})
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:     user.Username,
		Color:     bot.EmbedColor,
		Fields:    fields,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("256")},
	}
	return bot.RespondEmbedTracked(session, event, slash.Storage, embed)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func init() {
	command.DefaultRegistry.Register(&UserInfoCommand{})
}
