// Package coinflip implements the free-text coin toss.
package coinflip

import (
	"fmt"
	"math/rand"

	"rolehub/internal/bot"
	"rolehub/internal/command"

	"github.com/bwmarrin/discordgo"
)

type CoinflipCommand struct{}

func (c *CoinflipCommand) Name() string        { return "coinflip" }
func (c *CoinflipCommand) Description() string { return "Flip a coin" }

func (c *CoinflipCommand) PrefixEnabled() bool { return true }
func (c *CoinflipCommand) Aliases() []string   { return []string{"flip", "coin"} }

// No schema. Whatever the user typed after the name is ignored.
func (c *CoinflipCommand) ArgSpec() []command.Arg { return nil }

func (c *CoinflipCommand) Run(ctx interface{}) error {
	msg, ok := ctx.(*command.MessageContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	side := "Heads"
	if rand.Intn(2) == 1 {
		side = "Tails"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🪙 Coin Flip",
		Description: fmt.Sprintf("**%s**!", side),
		Color:       bot.EmbedColor,
	}
	_, err := bot.ReplyEmbedTracked(msg.Session, msg.Storage, msg.Event.Message, embed)
	return err
}

func init() {
	command.DefaultRegistry.Register(&CoinflipCommand{})
}
