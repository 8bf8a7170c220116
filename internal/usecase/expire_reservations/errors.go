package expire_reservations

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	// Прогон целиком становится no-op: следующий тик sweeper'а - естественный retry
	ErrInternal = errors.New("expire_reservations: internal error")
)
