package txmanager

import "errors"

var (
	// ErrTransaction возвращается, когда не удалось начать транзакцию
	ErrTransaction = errors.New("txmanager: transaction error")

	// ErrCommit возвращается, когда не удалось зафиксировать транзакцию
	ErrCommit = errors.New("txmanager: commit failed")
)
