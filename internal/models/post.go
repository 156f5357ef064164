package models

import "time"

// Post represents a piece of user-created content protected by CSRF validation
type Post struct {
	ID        string
	Title     string
	Content   string
	UserID    string
	CreatedAt time.Time
}
