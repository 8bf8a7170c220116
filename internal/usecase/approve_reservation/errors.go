package approve_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("approve_reservation: reservation not found")

	// ErrAlreadyRejected возвращается при попытке одобрить бронь,
	// уже находящуюся в терминальном статусе rejected
	// (проигравшая сторона optimistic concurrency)
	ErrAlreadyRejected = errors.New("approve_reservation: reservation is already rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_reservation: internal error")
)
