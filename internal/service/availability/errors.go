package availability

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("availability: location not found")

	// ErrNoTableAvailable возвращается, когда ни один стол не может принять компанию
	ErrNoTableAvailable = errors.New("availability: no table available")

	// ErrInvalidQuery возвращается при некорректных параметрах запроса
	ErrInvalidQuery = errors.New("availability: invalid query")

	// ErrInternal возвращается при внутренних ошибках резолвера
	ErrInternal = errors.New("availability: internal error")
)
