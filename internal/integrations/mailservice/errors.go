package mailservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Недоставленное письмо не отменяет подтвержденное бронирование
	ErrServiceDegraded = errors.New("mailservice unavailable: graceful degradation applied")
)
