package dashboard

import "errors"

var (
	// ErrNotStarted возвращается, когда сессия панели не запущена
	ErrNotStarted = errors.New("dashboard: session not started")

	// ErrAlreadyStarted возвращается при повторном запуске сессии
	ErrAlreadyStarted = errors.New("dashboard: session already started")

	// ErrNotReady возвращается, пока первый пакет изменений не получен
	ErrNotReady = errors.New("dashboard: initial load in progress")
)
