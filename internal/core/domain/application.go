package domain

import "time"

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const ApplicationPending ApplicationStatus = "pending"

// Application is a bid a provider submits against another user's task. The
// applicant fields are a snapshot taken at submission time.
type Application struct {
	ID              string            `json:"id" bson:"_id"`
	TaskID          string            `json:"task_id" bson:"task_id"`
	ApplicantID     string            `json:"applicant_id" bson:"applicant_id"`
	ApplicantName   string            `json:"applicant_name" bson:"applicant_name"`
	ApplicantCity   string            `json:"applicant_city" bson:"applicant_city"`
	ApplicantRating float64           `json:"applicant_rating" bson:"applicant_rating"`
	Proposal        string            `json:"proposal" bson:"proposal"`
	OfferedPrice    float64           `json:"offered_price" bson:"offered_price"`
	Status          ApplicationStatus `json:"status" bson:"status"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
}
