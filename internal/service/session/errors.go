package session

import "errors"

// ErrSessionRequired возвращается при пустом идентификаторе сессии
var ErrSessionRequired = errors.New("session: session id is required")
