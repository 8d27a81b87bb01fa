package panels

import (
	"path/filepath"
	"testing"

	"rolehub/internal/storage"
)

func TestToggleAction(t *testing.T) {
	tests := []struct {
		name   string
		roles  []string
		roleID string
		want   Action
	}{
		{"not held grants", []string{"a", "b"}, "c", ActionGrant},
		{"held revokes", []string{"a", "b"}, "b", ActionRevoke},
		{"no roles grants", nil, "x", ActionGrant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToggleAction(tt.roles, tt.roleID); got != tt.want {
				t.Errorf("ToggleAction(%v, %q) = %v, want %v", tt.roles, tt.roleID, got, tt.want)
			}
		})
	}
}

func TestToggleSequenceAlternates(t *testing.T) {
	// A member selecting the same role twice in a row must see grant then
	// revoke, assuming the first action landed before the second read.
	roles := []string{}
	if got := ToggleAction(roles, "r"); got != ActionGrant {
		t.Fatalf("first selection = %v, want grant", got)
	}
	roles = append(roles, "r")
	if got := ToggleAction(roles, "r"); got != ActionRevoke {
		t.Fatalf("second selection = %v, want revoke", got)
	}
}

func TestAttachAndAttached(t *testing.T) {
	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	defer store.Close()

	m := NewManager(store)
	if m.Attached("msg") {
		t.Error("fresh manager should have no live panels")
	}
	m.Attach("msg")
	if !m.Attached("msg") {
		t.Error("expected msg attached")
	}
}

func TestCustomID(t *testing.T) {
	if got := CustomID("g1"); got != "role-panel_g1" {
		t.Errorf("CustomID = %q", got)
	}
}
