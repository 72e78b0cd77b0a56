// Package audit records what staff changed through the dashboard and the
// admin commands.
package audit

import "time"

// Action describes what was done.
type Action string

const (
	ActionResourceCreated Action = "resource_created"
	ActionResourceUpdated Action = "resource_updated"
	ActionResourceDeleted Action = "resource_deleted"
	ActionStoryCreated    Action = "story_created"
	ActionStoryUpdated    Action = "story_updated"
	ActionStoryDeleted    Action = "story_deleted"
	ActionAdminGranted    Action = "admin_granted"
	ActionAdminRevoked    Action = "admin_revoked"
)

// Entry is a single audit trail record.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	ActorID    string    `json:"actorId"`
	ActorEmail string    `json:"actorEmail"`
	Action     Action    `json:"action"`
	TargetID   string    `json:"targetId,omitempty"`
	Summary    string    `json:"summary"`
	Preview    bool      `json:"preview"` // the change only reached the local store
}
