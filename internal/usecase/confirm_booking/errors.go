package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrLocationNotFound возвращается, когда локация бронирования не найдена
	ErrLocationNotFound = errors.New("confirm_booking: location not found")

	// ErrCannotConfirm возвращается, когда бронирование в терминальном статусе
	ErrCannotConfirm = errors.New("confirm_booking: booking cannot be confirmed")

	// ErrNoTableAvailable возвращается, когда ни один стол не может принять
	// компанию в интервале бронирования. Ожидаемый, штатный отказ: вызывающая
	// сторона сопровождает его подбором альтернативных слотов
	ErrNoTableAvailable = errors.New("confirm_booking: no table available")

	// ErrTableUnavailable возвращается, когда явно запрошенный стол не существует,
	// не принадлежит локации, мал для компании или занят в интервале
	ErrTableUnavailable = errors.New("confirm_booking: requested table is unavailable")

	// ErrConcurrencyConflict возвращается, когда гонка обнаружена на коммите
	// даже после повторной попытки; вызывающая сторона должна заново
	// проверить доступность
	ErrConcurrencyConflict = errors.New("confirm_booking: concurrent confirmation conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
