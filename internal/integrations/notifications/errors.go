package notifications

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifications: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе получателя webhook
	ErrInvalidResponse = errors.New("notifications: invalid webhook response")

	// ErrPublish возвращается, если сообщение не удалось опубликовать в Kafka
	ErrPublish = errors.New("notifications: failed to publish message")
)
