package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceNotOffered возвращается, когда услугу не оказывает этот профессионал
	ErrServiceNotOffered = errors.New("create_appointment: service is not offered by this professional")

	// ErrTimeInPast возвращается, когда дата+время не строго в будущем
	ErrTimeInPast = errors.New("create_appointment: appointment time is not in the future")

	// ErrOutsideWorkingHours возвращается, когда время не входит в сетку
	// слотов ни одного рабочего окна этого дня недели
	ErrOutsideWorkingHours = errors.New("create_appointment: time is outside working hours")

	// ErrSlotAlreadyBooked возвращается, когда слот занят другой записью
	// Конфликт, а не сбой: клиенту нужно предложить выбрать другое время
	ErrSlotAlreadyBooked = errors.New("create_appointment: slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// В отличие от ErrSlotAlreadyBooked - транзиентный сбой, клиент может повторить попытку
	ErrInternal = errors.New("create_appointment: internal error")
)
