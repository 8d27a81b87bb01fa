package blacklist

import (
	"os"
	"path/filepath"
	"testing"
)

func testCache(t *testing.T) (*Cache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blacklist.json")
	c := New(path)
	if err := c.Refresh(); err != nil {
		t.Fatalf("initial Refresh: %v", err)
	}
	return c, path
}

func TestRefreshCreatesMissingFile(t *testing.T) {
	_, path := testCache(t)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty JSON array, got %q", data)
	}
}

func TestAddIsVisibleImmediatelyAndAfterRefresh(t *testing.T) {
	c, _ := testCache(t)

	if err := c.Add("guild1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !c.IsBlacklisted("guild1") {
		t.Error("expected guild1 blacklisted immediately after Add")
	}

	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !c.IsBlacklisted("guild1") {
		t.Error("expected guild1 to survive a Refresh")
	}

	if err := c.Remove("guild1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if c.IsBlacklisted("guild1") {
		t.Error("expected guild1 removed")
	}
}

func TestAddAndRemoveAreIdempotent(t *testing.T) {
	c, _ := testCache(t)

	if err := c.Add("g"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add("g"); err != nil {
		t.Fatalf("duplicate Add: %v", err)
	}
	if err := c.Remove("g"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := c.Remove("g"); err != nil {
		t.Fatalf("absent Remove: %v", err)
	}
	if c.IsBlacklisted("g") {
		t.Error("expected g not blacklisted")
	}
}

func TestMutationsPersistToNewCache(t *testing.T) {
	c, path := testCache(t)

	for _, id := range []string{"a", "b"} {
		if err := c.Add(id); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}

	fresh := New(path)
	if err := fresh.Refresh(); err != nil {
		t.Fatalf("Refresh on fresh cache: %v", err)
	}
	if !fresh.IsBlacklisted("a") || !fresh.IsBlacklisted("b") {
		t.Error("expected fresh cache to see persisted entries")
	}
	if fresh.IsBlacklisted("c") {
		t.Error("unexpected entry c")
	}
}

func TestRefreshPicksUpOutOfBandEdits(t *testing.T) {
	c, path := testCache(t)

	if err := os.WriteFile(path, []byte(`["manual"]`), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if c.IsBlacklisted("manual") {
		t.Error("cache should be stale until Refresh")
	}
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !c.IsBlacklisted("manual") {
		t.Error("expected out-of-band entry after Refresh")
	}
}
