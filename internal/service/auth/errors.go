package auth

import "errors"

var (
	// ErrMissingCredentials возвращается, когда email или пароль не заполнены
	ErrMissingCredentials = errors.New("auth: email and password are required")

	// ErrInvalidEmail возвращается при некорректном формате email
	ErrInvalidEmail = errors.New("auth: invalid email format")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль (в том числе если пользователя нет)
	ErrInvalidCredentials = errors.New("auth: wrong email or password")

	// ErrUnauthenticated возвращается, когда сессия отсутствует или истекла
	ErrUnauthenticated = errors.New("auth: not authenticated")

	// ErrWeakPassword возвращается, когда пароль короче минимальной длины
	ErrWeakPassword = errors.New("auth: password is too short")

	// ErrEmailTaken возвращается, когда администратор с таким email уже существует
	ErrEmailTaken = errors.New("auth: email already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
