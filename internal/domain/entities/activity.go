package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType enumerates admin actions recorded in the audit trail
type ActivityType string

const (
	ActivityUserApproved        ActivityType = "user_approved"
	ActivityUserRejected        ActivityType = "user_rejected"
	ActivityUserRemoved         ActivityType = "user_removed"
	ActivityRoleChanged         ActivityType = "role_changed"
	ActivityEventCreated        ActivityType = "event_created"
	ActivityEventUpdated        ActivityType = "event_updated"
	ActivityEventDeleted        ActivityType = "event_deleted"
	ActivityEventArchived       ActivityType = "event_archived"
	ActivityParticipantApproved ActivityType = "participant_approved"
	ActivityParticipantRejected ActivityType = "participant_rejected"
)

// ActivityLog is one append-only audit entry. Entries are never mutated
// or deleted.
type ActivityLog struct {
	ID         uuid.UUID              `json:"id"`
	Type       ActivityType           `json:"type"`
	ActorID    uuid.UUID              `json:"actorId"`
	ActorName  string                 `json:"actorName"`
	ActorEmail string                 `json:"actorEmail"`
	TargetID   string                 `json:"targetId,omitempty"`
	TargetName string                 `json:"targetName,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}
