package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore возвращается при ошибках Redis
	ErrStore = errors.New("session.store: redis error")
)
