package auth

import "time"

// MinPasswordLength минимальная длина пароля администратора
const MinPasswordLength = 8

// SessionResponse результат успешного входа
type SessionResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse текущий администратор
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
