package crmservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("crmservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("crmservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// CRM не участвует в инварианте бронирования - недоступность не должна
	// ломать основной флоу
	ErrServiceDegraded = errors.New("crmservice unavailable: graceful degradation applied")
)
