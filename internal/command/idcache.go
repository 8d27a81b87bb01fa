package command

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultIDCachePath is where the slash command name→ID cache lives when no
// override is configured.
const DefaultIDCachePath = "data/commands-cache.json"

// IDCacheEntry maps a command name to the ID Discord assigned on the last
// successful registration. The file is rewritten on every successful sync
// and only ever read back (by the help command, for slash mentions).
type IDCacheEntry struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// SaveIDCache rewrites the cache file.
func SaveIDCache(path string, entries []IDCacheEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode command cache: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write command cache: %w", err)
	}
	return nil
}

// LoadIDCache reads the cache file into a name→ID map. A missing file is
// not an error; the map is just empty.
func LoadIDCache(path string) map[string]string {
	out := make(map[string]string)
	data, err := os.ReadFile(path)
	if err != nil {
		return out
	}
	var entries []IDCacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return out
	}
	for _, e := range entries {
		out[e.Name] = e.ID
	}
	return out
}
