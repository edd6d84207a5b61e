package domain

import "time"

// Admin is the profile attached to a user with the admin role.
type Admin struct {
	UserID      string    `json:"user_id" bson:"user_id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"_id"`
	AccessLevel string    `json:"access_level" bson:"access_level"`
	Department  string    `json:"department" bson:"department"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

const DefaultAccessLevel = "Admin"
