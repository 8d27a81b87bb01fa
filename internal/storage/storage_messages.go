package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Track marks a bot-authored message as deletable via the trash reaction.
// Tracking an already-tracked message is a no-op.
func (s *Storage) Track(messageID string) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO deletable_messages (message_id) VALUES (?)`, messageID)
	if err != nil {
		return fmt.Errorf("track message %s: %w", messageID, err)
	}
	return nil
}

// Untrack removes a message from the deletable set. Untracking an absent
// message is a no-op.
func (s *Storage) Untrack(messageID string) error {
	_, err := s.db.Exec(`DELETE FROM deletable_messages WHERE message_id = ?`, messageID)
	if err != nil {
		return fmt.Errorf("untrack message %s: %w", messageID, err)
	}
	return nil
}

// IsTracked reports whether a message is in the deletable set.
func (s *Storage) IsTracked(messageID string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM deletable_messages WHERE message_id = ? LIMIT 1`, messageID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check message %s: %w", messageID, err)
	}
	return true, nil
}
