package create_booking

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("create_booking: location not found")

	// ErrDateNotBookable возвращается, когда дата отклонена date gate
	// (закрытие, выходной, слишком рано или слишком далеко)
	// Это пользовательский отказ "выберите другой день", не сбой системы
	ErrDateNotBookable = errors.New("create_booking: date is not bookable")

	// ErrInvalidTimeSlot возвращается, когда время прихода не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("create_booking: time is not on the slot grid")

	// ErrSlotNotAvailable возвращается, когда ни один стол не может принять
	// компанию в запрошенном интервале; сопровождается подбором альтернатив
	ErrSlotNotAvailable = errors.New("create_booking: no table available for the requested slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
