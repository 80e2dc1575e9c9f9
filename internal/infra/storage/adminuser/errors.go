package adminuser

import "errors"

var (
	// ErrUserNotFound возвращается, когда администратор не найден
	ErrUserNotFound = errors.New("adminuser.repository: user not found")

	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("adminuser.repository: email already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("adminuser.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("adminuser.repository: failed to execute query")
)
