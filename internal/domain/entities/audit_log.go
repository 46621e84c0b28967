package entities

import (
	"encoding/json"
	"time"
)

// AuditLogEntry is an immutable, append-only record of an action.
// UserID is empty for system actions.
type AuditLogEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id,omitempty"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
