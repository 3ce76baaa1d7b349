package mongo

import "github.com/yaparim/marketplace/internal/core/ports"

var (
	_ ports.UserRepository        = (*UserRepository)(nil)
	_ ports.SessionRepository     = (*SessionRepository)(nil)
	_ ports.TaskRepository        = (*TaskRepository)(nil)
	_ ports.ApplicationRepository = (*ApplicationRepository)(nil)
	_ ports.StatsRepository       = (*StatsRepository)(nil)
)
