package discord

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// Per-scope hash cache for the slash catalogue. A scope is one guild ID, or
// globalScope for the global set. When every command in a scope hashes the
// same as the cached value, the bulk overwrite for that scope is skipped.

const globalScope = "global"

func commandHashPath(dir, scope string) string {
	return filepath.Join(dir, scope+".json")
}

func loadCommandHashes(dir, scope string) map[string]string {
	out := make(map[string]string)
	if data, err := os.ReadFile(commandHashPath(dir, scope)); err == nil {
		_ = json.Unmarshal(data, &out)
	}
	return out
}

func saveCommandHashes(dir, scope string, hashes map[string]string) {
	path := commandHashPath(dir, scope)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("[WARN] Failed to create command hash directory: %v", err)
		return
	}
	data, err := json.MarshalIndent(hashes, "", "  ")
	if err != nil {
		log.Printf("[WARN] Failed to encode command hashes for %s: %v", scope, err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("[WARN] Failed to write command hashes for %s: %v", scope, err)
	}
}

// catalogueChanged compares a scope's definitions against the cached hashes.
// It reports whether a sync is needed and returns the hash set to cache once
// that sync succeeds. A removed command counts as a change.
func catalogueChanged(cached map[string]string, defs []*discordgo.ApplicationCommand) (bool, map[string]string) {
	next := make(map[string]string, len(defs))
	changed := len(cached) != len(defs)
	for _, d := range defs {
		h := hashCommand(d)
		next[d.Name] = h
		if cached[d.Name] != h {
			changed = true
		}
	}
	return changed, next
}

// hashCommand returns a deterministic SHA-1 of a command's stable fields.
// Runtime-only fields (IDs, versions) are excluded so a cached hash survives
// re-registration.
func hashCommand(c *discordgo.ApplicationCommand) string {
	stable := map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"type":        c.Type,
	}
	if c.DefaultMemberPermissions != nil {
		stable["default_member_permissions"] = *c.DefaultMemberPermissions
	}
	if len(c.Options) > 0 {
		stable["options"] = normalizeOptions(c.Options)
	}
	data, _ := json.Marshal(stable)
	sum := sha1.Sum(data)
	return fmt.Sprintf("%x", sum)
}

func normalizeOptions(opts []*discordgo.ApplicationCommandOption) []map[string]interface{} {
	out := make([]map[string]interface{}, len(opts))
	for i, o := range opts {
		entry := map[string]interface{}{
			"name":        o.Name,
			"description": o.Description,
			"type":        o.Type,
			"required":    o.Required,
		}
		if len(o.Choices) > 0 {
			choices := make([]map[string]interface{}, len(o.Choices))
			for j, ch := range o.Choices {
				choices[j] = map[string]interface{}{"name": ch.Name, "value": ch.Value}
			}
			entry["choices"] = choices
		}
		if len(o.Options) > 0 {
			entry["options"] = normalizeOptions(o.Options)
		}
		out[i] = entry
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i]["name"].(string) < out[j]["name"].(string)
	})
	return out
}
