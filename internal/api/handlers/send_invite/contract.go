package send_invite

import "context"

// MessageSender интерфейс отправителя сообщений WhatsApp.
// nil - отправка выключена, клиенту возвращается только ссылка.
type MessageSender interface {
	SendText(ctx context.Context, phone, message string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
