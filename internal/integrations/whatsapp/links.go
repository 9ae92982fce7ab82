package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kmestetica/agenda-service/pkg/types"
)

// NormalizePhone приводит номер WhatsApp к международному формату:
// отбрасывает всё, кроме цифр, и добавляет бразильский код страны 55
// к номерам из 10-11 цифр (DDD + номер). Номера, уже содержащие код
// страны, не трогаем.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()
	if len(phone) < 10 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	if len(phone) <= 11 {
		phone = "55" + phone
	}
	return phone, nil
}

// FormatDateBR конвертирует дату из YYYY-MM-DD в DD/MM/YYYY
func FormatDateBR(dateKey string) string {
	parts := strings.Split(dateKey, "-")
	if len(parts) != 3 {
		return dateKey
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// ConfirmationLink строит click-to-chat ссылку с текстом подтверждения
// для отправки клиенту вручную
func ConfirmationLink(clientPhone, clientName, dateKey string, startTime types.TimeString) (string, error) {
	phone, err := NormalizePhone(clientPhone)
	if err != nil {
		return "", err
	}

	message := fmt.Sprintf(`Oi *%s*, Tudo bem? 💕
Sua agenda na KM Estética está confirmadíssima! ✨

🗓 *%s* às *%s*

Estamos muito felizes em te receber para cuidar de você com todo carinho que merece.
Se precisar ajustar alguma informação, é só mandar uma mensagem aqui. 💬

Até lá! 😍🌸`, clientName, FormatDateBR(dateKey), startTime)

	return chatLink(phone, message), nil
}

// InviteMessage строит текст приглашения клиента в онлайн-календарь
func InviteMessage(clientName, appURL string) string {
	return fmt.Sprintf(`Olá, *%s*! 🌷
Aqui é da *KM Estética*.

Para facilitar seu dia a dia, agora você pode escolher seu horário no nosso calendário digital:

👇 *Toque abaixo para ver os horários disponíveis:*
%s

É só escolher o dia e a hora que preferir.
Qualquer dúvida, estou por aqui! 😘`, clientName, appURL)
}

// InviteLink строит click-to-chat ссылку с приглашением клиента
// в онлайн-календарь
func InviteLink(clientPhone, clientName, appURL string) (string, error) {
	phone, err := NormalizePhone(clientPhone)
	if err != nil {
		return "", err
	}
	return chatLink(phone, InviteMessage(clientName, appURL)), nil
}

// chatLink собирает универсальную ссылку WhatsApp.
// api.whatsapp.com переживает эмодзи в URL лучше, чем wa.me
func chatLink(phone, message string) string {
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", phone, url.QueryEscape(message))
}
