package whatsapp

// SendTextRequest тело запроса send-text к Z-API
type SendTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ErrorResponse модель ошибки от Z-API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
