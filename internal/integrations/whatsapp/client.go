package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки сообщений WhatsApp через Z-API
type Client struct {
	baseURL     string
	clientToken string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента Z-API
func NewClient(instanceID, instanceToken, clientToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     fmt.Sprintf("https://api.z-api.io/instances/%s/token/%s", instanceID, instanceToken),
		clientToken: clientToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendText отправляет текстовое сообщение на указанный номер.
// Номер должен быть предварительно нормализован (NormalizePhone).
func (c *Client) SendText(ctx context.Context, phone, message string) error {
	url := fmt.Sprintf("%s/send-text", c.baseURL)

	body, err := json.Marshal(SendTextRequest{Phone: phone, Message: message})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-Token", c.clientToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("WhatsApp message sent to %s", phone)
	return nil
}
