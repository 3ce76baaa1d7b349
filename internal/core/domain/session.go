package domain

import "time"

// RoleSelection is one entry of the append-only session role log.
type RoleSelection struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Role      Role      `json:"current_role" bson:"current_role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
