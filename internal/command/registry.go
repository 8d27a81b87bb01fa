package command

import (
	"log"
	"sort"
)

// DefaultRegistry is the global registry commands self-register into.
var DefaultRegistry = NewRegistry()

// Registry collects commands at process start. Load classifies them once
// into lookup tables; nothing is re-inspected on dispatch.
type Registry struct {
	ordered []Command
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a command. Usually called from a subpackage init().
func (r *Registry) Register(c Command) {
	r.ordered = append(r.ordered, c)
}

// GetAll returns every registered command, sorted by name.
func (r *Registry) GetAll() []Command {
	list := make([]Command, len(r.ordered))
	copy(list, r.ordered)
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// PrefixEntry is a free-text command with its parsing schema, decided at
// load time.
type PrefixEntry struct {
	Cmd  Command
	Spec []Arg
}

// Tables are the dispatch lookup tables produced by Load.
type Tables struct {
	Global map[string]Command            // global slash, by name
	Guild  map[string]map[string]Command // guild slash, by guild then name
	Prefix map[string]PrefixEntry        // free-text, by name and alias
}

// Load classifies every registered command. A command may be both slash and
// free-text. Definitions matching no shape are logged and skipped; duplicate
// names within a scope are logged as a configuration error, last one wins.
// Loading never aborts on a single bad definition.
func (r *Registry) Load() *Tables {
	t := &Tables{
		Global: make(map[string]Command),
		Guild:  make(map[string]map[string]Command),
		Prefix: make(map[string]PrefixEntry),
	}

	for _, c := range r.ordered {
		classified := false

		if sp, ok := c.(SlashProvider); ok && sp.SlashDefinition() != nil {
			if gp, ok := c.(GuildProvider); ok && gp.TargetGuildID() != "" {
				guildID := gp.TargetGuildID()
				if t.Guild[guildID] == nil {
					t.Guild[guildID] = make(map[string]Command)
				}
				if _, dup := t.Guild[guildID][c.Name()]; dup {
					log.Printf("[WARN] Duplicate guild command %q for guild %s, keeping last", c.Name(), guildID)
				}
				t.Guild[guildID][c.Name()] = c
				log.Printf("[DEBUG] Loaded guild slash command: %s (guild %s)", c.Name(), guildID)
			} else {
				if _, dup := t.Global[c.Name()]; dup {
					log.Printf("[WARN] Duplicate global command %q, keeping last", c.Name())
				}
				t.Global[c.Name()] = c
				log.Printf("[DEBUG] Loaded global slash command: %s", c.Name())
			}
			classified = true
		}

		if pp, ok := c.(PrefixProvider); ok && pp.PrefixEnabled() {
			entry := PrefixEntry{Cmd: c, Spec: pp.ArgSpec()}
			if _, dup := t.Prefix[c.Name()]; dup {
				log.Printf("[WARN] Duplicate prefix command %q, keeping last", c.Name())
			}
			t.Prefix[c.Name()] = entry
			for _, alias := range pp.Aliases() {
				if _, dup := t.Prefix[alias]; dup {
					log.Printf("[WARN] Duplicate prefix alias %q for command %q, keeping last", alias, c.Name())
				}
				t.Prefix[alias] = entry
			}
			log.Printf("[DEBUG] Loaded prefix command: %s", c.Name())
			classified = true
		}

		if !classified {
			log.Printf("[WARN] Command %q is neither a slash nor a prefix command, skipping", c.Name())
		}
	}

	return t
}

// GlobalNames returns the global slash command names, sorted.
func (t *Tables) GlobalNames() []string {
	names := make([]string, 0, len(t.Global))
	for name := range t.Global {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GuildIDs returns every guild with guild-scoped commands, sorted.
func (t *Tables) GuildIDs() []string {
	ids := make([]string, 0, len(t.Guild))
	for id := range t.Guild {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
