// Package dice implements the dice roller, reachable both as a slash
// command and as a free-text command.
package dice

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"rolehub/internal/bot"
	"rolehub/internal/command"

	"github.com/bwmarrin/discordgo"
)

const (
	minSides = 2
	maxSides = 1000
	minCount = 1
	maxCount = 100

	// Rolls wrap to a new line past this many per line so large counts
	// stay readable.
	rollsPerLine = 15
)

type DiceCommand struct{}

func (c *DiceCommand) Name() string        { return "dice" }
func (c *DiceCommand) Description() string { return "Roll one or more dice" }

func (c *DiceCommand) PrefixEnabled() bool { return true }
func (c *DiceCommand) Aliases() []string   { return []string{"roll"} }

func (c *DiceCommand) ArgSpec() []command.Arg {
	return []command.Arg{
		{Name: "sides", Type: command.ArgInteger, Required: true},
		{Name: "count", Type: command.ArgInteger, Required: true},
	}
}

func (c *DiceCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "sides",
				Description: "Number of sides per die (2-1000)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "Number of dice to roll (1-100)",
				Required:    true,
			},
		},
	}
}

func (c *DiceCommand) Run(ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.SlashContext:
		return c.runSlash(v)
	case *command.MessageContext:
		return c.runMessage(v)
	default:
		return fmt.Errorf("wrong context type")
	}
}

func (c *DiceCommand) runSlash(slash *command.SlashContext) error {
	sides, count := 6, 1
	for _, opt := range slash.Event.ApplicationCommandData().Options {
		switch opt.Name {
		case "sides":
			sides = int(opt.IntValue())
		case "count":
			count = int(opt.IntValue())
		}
	}

	embed := rollEmbed(sides, count)
	return bot.RespondEmbedTracked(slash.Session, slash.Event, slash.Storage, embed)
}

func (c *DiceCommand) runMessage(msg *command.MessageContext) error {
	sides := msg.Args["sides"].(int)
	count := msg.Args["count"].(int)

	embed := rollEmbed(sides, count)
	_, err := bot.ReplyEmbedTracked(msg.Session, msg.Storage, msg.Event.Message, embed)
	return err
}

func rollEmbed(sides, count int) *discordgo.MessageEmbed {
	sides = clamp(sides, minSides, maxSides)
	count = clamp(count, minCount, maxCount)

	rolls := rollDice(sides, count)
	total := 0
	for _, r := range rolls {
		total += r
	}

	desc := fmt.Sprintf("Rolled **%dd%d**\n%s", count, sides, formatRolls(rolls, rollsPerLine))
	if count > 1 {
		desc += fmt.Sprintf("\n**Total**: %d", total)
	}

	return &discordgo.MessageEmbed{
		Title:       "🎲 Dice Roll",
		Description: desc,
		Color:       bot.EmbedColor,
	}
}

func rollDice(sides, count int) []int {
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = rand.Intn(sides) + 1
	}
	return rolls
}

// formatRolls renders the rolls as a backticked list, broken into lines of
// at most perLine values.
func formatRolls(rolls []int, perLine int) string {
	var sb strings.Builder
	for i, r := range rolls {
		if i > 0 {
			if i%perLine == 0 {
				sb.WriteString("\n")
			} else {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("`" + strconv.Itoa(r) + "`")
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	command.DefaultRegistry.Register(&DiceCommand{})
}
