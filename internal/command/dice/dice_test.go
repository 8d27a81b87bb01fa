package dice

import (
	"strings"
	"testing"
)

func TestRollDiceStaysInRange(t *testing.T) {
	rolls := rollDice(6, 100)
	if len(rolls) != 100 {
		t.Fatalf("expected 100 rolls, got %d", len(rolls))
	}
	for _, r := range rolls {
		if r < 1 || r > 6 {
			t.Errorf("roll %d out of range [1, 6]", r)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{1, minSides, maxSides, minSides},
		{5000, minSides, maxSides, maxSides},
		{6, minSides, maxSides, 6},
		{0, minCount, maxCount, minCount},
		{101, minCount, maxCount, maxCount},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFormatRollsBreaksLines(t *testing.T) {
	rolls := make([]int, 31)
	for i := range rolls {
		rolls[i] = 1
	}
	out := formatRolls(rolls, 15)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 line breaks for 31 rolls, got %d", got)
	}

	short := formatRolls([]int{3, 5}, 15)
	if short != "`3`, `5`" {
		t.Errorf("unexpected short format: %q", short)
	}
}

func TestArgSpecNamesMatchSlashOptions(t *testing.T) {
	c := &DiceCommand{}
	def := c.SlashDefinition()
	spec := c.ArgSpec()
	if len(def.Options) != len(spec) {
		t.Fatalf("slash options and arg spec disagree: %d vs %d", len(def.Options), len(spec))
	}
	for i, opt := range def.Options {
		if opt.Name != spec[i].Name {
			t.Errorf("option %d: slash name %q, spec name %q", i, opt.Name, spec[i].Name)
		}
	}
}
