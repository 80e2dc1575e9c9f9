package changefeed

import "errors"

var (
	// ErrListen возвращается, если не удалось подписаться на канал уведомлений
	ErrListen = errors.New("changefeed: failed to listen")

	// ErrSnapshot возвращается, если не удалось прочитать полное состояние коллекции
	ErrSnapshot = errors.New("changefeed: failed to load snapshot")

	// ErrFetch возвращается, если не удалось дочитать измененную запись
	ErrFetch = errors.New("changefeed: failed to fetch changed appointment")

	// ErrClosed возвращается, когда канал уведомлений закрыт
	ErrClosed = errors.New("changefeed: listener closed")

	// ErrBadPayload возвращается при неразборчивом уведомлении
	ErrBadPayload = errors.New("changefeed: bad notification payload")
)
