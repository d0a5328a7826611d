package mailservice

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

// Client клиент сервиса нотификаций (email)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента нотификаций
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет письмо-подтверждение бронирования
// Доставка письма не входит в инвариант: ошибки заворачиваются в
// ErrServiceDegraded и логируются вызывающей стороной
func (c *Client) SendBookingConfirmation(ctx context.Context, msg *ConfirmationMessage) error {
	if msg.CustomerEmail == nil || *msg.CustomerEmail == "" {
		// Гость без email - нечего отправлять
		return nil
	}

	url := fmt.Sprintf("%s/internal/notifications/booking-confirmed", c.baseURL)

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("mail service unavailable, applying graceful degradation for booking_id=%d: %v", msg.BookingID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, msg.BookingID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusAccepted:
		c.log.Info("confirmation dispatched: booking_id=%d", msg.BookingID)
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("mail service returned status %d for booking_id=%d: %s", resp.StatusCode, msg.BookingID, string(body))
		return fmt.Errorf("%w: unexpected status code %d", ErrServiceDegraded, resp.StatusCode)
	}
}
