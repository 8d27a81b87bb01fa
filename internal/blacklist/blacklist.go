// Package blacklist answers "is this guild suppressed?" on the hot dispatch
// path without a storage round-trip. The durable source of truth is a JSON
// file holding a list of guild IDs; an in-memory set mirrors it and is
// reconciled by a periodic refresh. Dispatch code never touches the file
// directly; Refresh, Add and Remove are the only mutators.
package blacklist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// DefaultRefreshInterval is how often the cache re-reads the file so that
// out-of-band edits are picked up without a restart.
const DefaultRefreshInterval = 60 * time.Second

type Cache struct {
	path string
	mu   sync.RWMutex
	set  map[string]struct{}
}

// New returns a cache backed by the JSON file at path. Call Refresh before
// first use to load the durable state.
func New(path string) *Cache {
	return &Cache{path: path, set: make(map[string]struct{})}
}

// Refresh reloads the full guild set from the file, replacing the in-memory
// set atomically. If the file does not exist it is created empty.
func (c *Cache) Refresh() error {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		if err := c.writeFile(nil); err != nil {
			return fmt.Errorf("create blacklist file: %w", err)
		}
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("read blacklist file: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("decode blacklist file: %w", err)
	}

	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}

	c.mu.Lock()
	c.set = next
	c.mu.Unlock()
	return nil
}

// IsBlacklisted is a pure in-memory lookup.
func (c *Cache) IsBlacklisted(guildID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.set[guildID]
	return ok
}

// Add puts guildID on the blacklist. The file is written before the
// in-memory set changes, so a crash in between never yields a false
// "not blacklisted" after the write was confirmed. Adding an already
// present ID is a no-op.
func (c *Cache) Add(guildID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.set[guildID]; ok {
		return nil
	}

	ids := make([]string, 0, len(c.set)+1)
	for id := range c.set {
		ids = append(ids, id)
	}
	ids = append(ids, guildID)

	if err := c.writeFile(ids); err != nil {
		return fmt.Errorf("persist blacklist: %w", err)
	}
	c.set[guildID] = struct{}{}
	log.Printf("[INFO] Guild %s added to blacklist", guildID)
	return nil
}

// Remove takes guildID off the blacklist. Removing an absent ID is a no-op.
func (c *Cache) Remove(guildID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.set[guildID]; !ok {
		return nil
	}

	ids := make([]string, 0, len(c.set)-1)
	for id := range c.set {
		if id != guildID {
			ids = append(ids, id)
		}
	}

	if err := c.writeFile(ids); err != nil {
		return fmt.Errorf("persist blacklist: %w", err)
	}
	delete(c.set, guildID)
	log.Printf("[INFO] Guild %s removed from blacklist", guildID)
	return nil
}

// Poll refreshes the cache on a fixed interval until ctx is cancelled.
func (c *Cache) Poll(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Refresh(); err != nil {
				log.Printf("[ERR] Blacklist refresh failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (c *Cache) writeFile(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	sort.Strings(ids)

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(c.path, data, 0644)
}
