package domain

import "time"

// Notification is an in-app message shown in a staff user's inbox.
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Type      string    `json:"type" bson:"type"`
	IsRead    bool      `json:"is_read" bson:"is_read"`
	Link      string    `json:"link,omitempty" bson:"link,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
