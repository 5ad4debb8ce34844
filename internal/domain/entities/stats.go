package entities

// DashboardStats is the admin dashboard summary
type DashboardStats struct {
	Users              map[UserStatus]int64  `json:"users"`
	Events             map[EventStatus]int64 `json:"events"`
	ActiveParticipants int64                 `json:"activeParticipants"`
	ArchivedEvents     int64                 `json:"archivedEvents"`
}
