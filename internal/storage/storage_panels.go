package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// RoleBinding is one selectable entry on a role panel.
type RoleBinding struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RolePanel is a persisted interactive role-selection message.
type RolePanel struct {
	MessageID string
	ChannelID string
	GuildID   string
	Roles     []RoleBinding
}

// AddRolePanel persists a newly created panel.
func (s *Storage) AddRolePanel(p RolePanel) error {
	rolesJSON, err := json.Marshal(p.Roles)
	if err != nil {
		return fmt.Errorf("marshal panel roles: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO role_panels (message_id, channel_id, guild_id, roles_json) VALUES (?, ?, ?, ?)`,
		p.MessageID, p.ChannelID, p.GuildID, string(rolesJSON),
	)
	if err != nil {
		return fmt.Errorf("add role panel %s: %w", p.MessageID, err)
	}
	return nil
}

// RolePanel returns the panel for messageID, or nil if none exists.
func (s *Storage) RolePanel(messageID string) (*RolePanel, error) {
	row := s.db.QueryRow(
		`SELECT message_id, channel_id, guild_id, roles_json FROM role_panels WHERE message_id = ?`,
		messageID,
	)
	p, err := scanRolePanel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get role panel %s: %w", messageID, err)
	}
	return p, nil
}

// AllRolePanels returns every persisted panel, for startup replay.
func (s *Storage) AllRolePanels() ([]RolePanel, error) {
	rows, err := s.db.Query(`SELECT message_id, channel_id, guild_id, roles_json FROM role_panels`)
	if err != nil {
		return nil, fmt.Errorf("list role panels: %w", err)
	}
	defer rows.Close()

	var panels []RolePanel
	for rows.Next() {
		p, err := scanRolePanel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role panel: %w", err)
		}
		panels = append(panels, *p)
	}
	return panels, rows.Err()
}

// DeleteRolePanel removes a persisted panel. Not called by any command yet;
// kept for cleanup tooling.
func (s *Storage) DeleteRolePanel(messageID string) error {
	_, err := s.db.Exec(`DELETE FROM role_panels WHERE message_id = ?`, messageID)
	if err != nil {
		return fmt.Errorf("delete role panel %s: %w", messageID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRolePanel(row rowScanner) (*RolePanel, error) {
	var p RolePanel
	var rolesJSON string
	if err := row.Scan(&p.MessageID, &p.ChannelID, &p.GuildID, &rolesJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(rolesJSON), &p.Roles); err != nil {
		return nil, fmt.Errorf("decode roles_json: %w", err)
	}
	return &p, nil
}
