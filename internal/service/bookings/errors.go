package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить
	// (уже отменено или завершено)
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrCannotComplete возвращается, когда завершить можно только подтвержденное бронирование
	ErrCannotComplete = errors.New("bookings: only a confirmed booking can be completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
