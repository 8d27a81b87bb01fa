// Package panels keeps role-assignment panels alive across restarts. The
// persisted panel table is the log; the live listener set is derived state,
// rebuilt in full from the log at every startup.
package panels

import (
	"fmt"
	"log"
	"sync"

	"rolehub/internal/bot"
	"rolehub/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// CustomIDPrefix marks select-menu interactions belonging to role panels.
const CustomIDPrefix = "role-panel_"

// CustomID builds the select-menu custom ID for a guild's panels.
func CustomID(guildID string) string {
	return CustomIDPrefix + guildID
}

// Manager owns the set of panel messages with a live listener attached.
type Manager struct {
	store *storage.Storage
	mu    sync.RWMutex
	live  map[string]struct{} // message IDs responding to selections
}

func NewManager(store *storage.Storage) *Manager {
	return &Manager{store: store, live: make(map[string]struct{})}
}

// Attach marks a panel message as live. Called right after creation and
// during startup replay.
func (m *Manager) Attach(messageID string) {
	m.mu.Lock()
	m.live[messageID] = struct{}{}
	m.mu.Unlock()
}

// Attached reports whether a panel message has a live listener.
func (m *Manager) Attached(messageID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.live[messageID]
	return ok
}

// Replay walks every persisted panel and re-attaches a listener. Panels
// whose channel or message no longer exists are skipped with a warning;
// orphaned records are left in place for manual cleanup.
func (m *Manager) Replay(s *discordgo.Session) {
	log.Println("[INFO] Loading role panels from storage...")

	panels, err := m.store.AllRolePanels()
	if err != nil {
		log.Printf("[ERR] Failed to load role panels: %v", err)
		return
	}

	attached := 0
	for _, p := range panels {
		if _, err := s.Channel(p.ChannelID); err != nil {
			log.Printf("[WARN] Panel channel not found, skipping: %s", p.ChannelID)
			continue
		}
		if _, err := s.ChannelMessage(p.ChannelID, p.MessageID); err != nil {
			log.Printf("[WARN] Panel message not found, skipping: %s", p.MessageID)
			continue
		}
		m.Attach(p.MessageID)
		attached++
	}

	log.Printf("[INFO] Re-attached %d of %d role panel(s)", attached, len(panels))
}

// Action is the outcome a role selection resolves to.
type Action int

const (
	ActionGrant Action = iota
	ActionRevoke
)

// ToggleAction decides grant-or-revoke from the member's current roles.
// Read-then-act: two near-simultaneous selections by the same member can
// race; that behavior is deliberately kept.
func ToggleAction(memberRoles []string, roleID string) Action {
	for _, r := range memberRoles {
		if r == roleID {
			return ActionRevoke
		}
	}
	return ActionGrant
}

// HandleSelect toggles the selected role on the acting member and replies
// privately with the outcome. Shared by the live-creation path and the
// startup replay path.
func (m *Manager) HandleSelect(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return nil
	}
	roleID := data.Values[0]
	member := i.Member
	if member == nil || member.User == nil {
		return fmt.Errorf("role selection without a guild member")
	}

	role, err := s.State.Role(i.GuildID, roleID)
	if err != nil || role == nil {
		return bot.RespondEphemeral(s, i, "That role no longer exists.")
	}

	e := &discordgo.MessageEmbed{}
	var actionType string
	switch ToggleAction(member.Roles, roleID) {
	case ActionRevoke:
		if err := s.GuildMemberRoleRemove(i.GuildID, member.User.ID, roleID); err != nil {
			log.Printf("[ERR] Failed to remove role %s from %s: %v", roleID, member.User.ID, err)
			return bot.RespondEphemeral(s, i, "Couldn't update your roles. The bot may be missing permissions.")
		}
		e.Description = fmt.Sprintf("Removed <@&%s>.", roleID)
		e.Color = 0xed4245
		actionType = "ROLE_REMOVE"
	case ActionGrant:
		if err := s.GuildMemberRoleAdd(i.GuildID, member.User.ID, roleID); err != nil {
			log.Printf("[ERR] Failed to add role %s to %s: %v", roleID, member.User.ID, err)
			return bot.RespondEphemeral(s, i, "Couldn't update your roles. The bot may be missing permissions.")
		}
		e.Description = fmt.Sprintf("Granted <@&%s>.", roleID)
		e.Color = 0x57f287
		actionType = "ROLE_ADD"
	}

	if err := bot.RespondEmbedEphemeral(s, i, e); err != nil {
		return err
	}
	log.Printf("[ROLE_PANEL] %s: %s (ID: %s) by %s in guild %s",
		actionType, role.Name, roleID, member.User.Username, i.GuildID)
	return nil
}
