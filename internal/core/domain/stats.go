package domain

// Stats is a snapshot of marketplace-wide counters.
type Stats struct {
	TotalTasks        int64 `json:"total_tasks"`
	ActiveTasks       int64 `json:"active_tasks"`
	TotalUsers        int64 `json:"total_users"`
	TotalApplications int64 `json:"total_applications"`
}
