package role

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestDedupeRoles(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "1", Name: "Red"},
		nil,
		{ID: "2", Name: "Blue"},
		{ID: "1", Name: "Red again"},
	}

	got := dedupeRoles(roles)
	if len(got) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(got))
	}
	if got[0].ID != "1" || got[0].Label != "Red" {
		t.Errorf("first occurrence should win: %+v", got[0])
	}
	if got[1].ID != "2" || got[1].Label != "Blue" {
		t.Errorf("unexpected second binding: %+v", got[1])
	}
}

func TestSlashDefinitionRoleOptions(t *testing.T) {
	def := (&RolePanelCommand{}).SlashDefinition()

	var required, roleOpts int
	for _, opt := range def.Options {
		if opt.Type == discordgo.ApplicationCommandOptionRole {
			roleOpts++
			if opt.Required {
				required++
			}
		}
	}
	if roleOpts != maxRoles {
		t.Errorf("expected %d role options, got %d", maxRoles, roleOpts)
	}
	if required != 1 {
		t.Errorf("expected exactly one required role option, got %d", required)
	}
	if def.DefaultMemberPermissions == nil || *def.DefaultMemberPermissions != int64(discordgo.PermissionManageRoles) {
		t.Error("panel creation should default to Manage Roles permission")
	}
}
