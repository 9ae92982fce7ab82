package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят,
	// пересекается с существующей записью или уже прошёл
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrDayClosed возвращается, когда салон закрыт в указанную дату
	ErrDayClosed = errors.New("create_appointment: closed on this date")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("create_appointment: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
