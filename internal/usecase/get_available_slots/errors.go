package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInvalidWindowConfig возвращается для некорректного рабочего окна
	// (неположительный шаг или start >= end). Ошибка изолирована: такое окно
	// пропускается, остальные окна дня обрабатываются
	ErrInvalidWindowConfig = errors.New("invalid working window configuration")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
