package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("tables: table not found")

	// ErrDuplicateTable возвращается, когда номер стола уже занят в локации
	ErrDuplicateTable = errors.New("tables: table number already exists at this location")

	// ErrInvalidCapacity возвращается при вместимости меньше 1
	ErrInvalidCapacity = errors.New("tables: capacity must be at least 1")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("tables: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tables: internal error")
)
