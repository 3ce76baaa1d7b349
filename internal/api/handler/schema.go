package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yaparim/marketplace/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name          string `json:"name"           validate:"required,min=2,max=50"`
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=6,max=72"`
	Phone         string `json:"phone"          validate:"required,min=10,max=15"`
	City          string `json:"city"           validate:"required"`
	PreferredRole string `json:"preferred_role" validate:"required,oneof=poster provider both"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type selectRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=poster provider"`
}

type authResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *domain.User `json:"user"`
}

type selectRoleResponse struct {
	Message     string      `json:"message"`
	SessionID   string      `json:"session_id"`
	CurrentRole domain.Role `json:"current_role"`
}

// --- Tasks ---

type createTaskRequest struct {
	Title       string    `json:"title"        validate:"required,min=5,max=100"`
	Description string    `json:"description"  validate:"required,min=10,max=1000"`
	Category    string    `json:"category"     validate:"required"`
	City        string    `json:"city"         validate:"required"`
	District    string    `json:"district"     validate:"required,min=2,max=50"`
	Budget      float64   `json:"budget"       validate:"gt=0"`
	Deadline    timestamp `json:"deadline"`
	ContactInfo string    `json:"contact_info" validate:"required,min=10,max=200"`
}

type listTasksQuery struct {
	City     string
	Category string
	Limit    int
	Skip     int
}

type createTaskResponse struct {
	Message string       `json:"message"`
	TaskID  string       `json:"task_id"`
	Task    *domain.Task `json:"task"`
}

type listTasksResponse struct {
	Tasks []*domain.Task `json:"tasks"`
	Total int64          `json:"total"`
}

// --- Applications ---

type applyRequest struct {
	// TaskID is optional; when present it must match the path.
	TaskID       string  `json:"task_id,omitempty"`
	Proposal     string  `json:"proposal"      validate:"required,min=10,max=500"`
	OfferedPrice float64 `json:"offered_price" validate:"gt=0"`
}

type applyResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
}

type listApplicationsResponse struct {
	Applications []*domain.Application `json:"applications"`
	Total        int                   `json:"total"`
}

type userTasksResponse struct {
	CreatedTasks []*domain.Task        `json:"created_tasks"`
	Applications []*domain.Application `json:"applications"`
}

// --- Reference data ---

type bannerResponse struct {
	Message string `json:"message"`
}

type citiesResponse struct {
	Cities []string `json:"cities"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// timestamp accepts RFC 3339 as well as the zone-less forms browsers send
// from datetime-local inputs; zone-less values are read as UTC.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("deadline must be a date-time string")
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("deadline %q is not a valid date-time", s)
}
