package domain

import "time"

// TaskStatus is the lifecycle state of a task. Only TaskActive is produced
// today; closing and completing tasks is not part of the marketplace yet.
type TaskStatus string

const TaskActive TaskStatus = "active"

// Task is a job posted by a user. It is readable by everyone and owned by
// its poster.
type Task struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Category    string     `json:"category" bson:"category"`
	City        string     `json:"city" bson:"city"`
	District    string     `json:"district" bson:"district"`
	Budget      float64    `json:"budget" bson:"budget"`
	Deadline    time.Time  `json:"deadline" bson:"deadline"`
	ContactInfo string     `json:"contact_info" bson:"contact_info"`
	PosterID    string     `json:"poster_id" bson:"poster_id"`
	PosterName  string     `json:"poster_name" bson:"poster_name"`
	Status      TaskStatus `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// OwnedBy reports whether userID posted the task.
func (t *Task) OwnedBy(userID string) bool {
	return t.PosterID == userID
}
