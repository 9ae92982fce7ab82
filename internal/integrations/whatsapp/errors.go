package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Z-API
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrInvalidPhone возвращается, когда номер телефона нельзя нормализовать
	ErrInvalidPhone = errors.New("whatsapp client: invalid phone number")
)
