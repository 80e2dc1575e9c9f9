package domain

import "time"

// AdminUser is an operator allowed into the admin panel
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is an authenticated admin session
type Session struct {
	Token     string
	UserID    string
	Email     string
	ExpiresAt time.Time
}
