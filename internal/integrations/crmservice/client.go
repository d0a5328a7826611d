package crmservice

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

// Client клиент для работы с CRM-сервисом гостей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CRM
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SyncGuestActivity отправляет событие активности гостя в CRM
//
// Применяет graceful degradation: любая ошибка транспорта или сервиса
// заворачивается в ErrServiceDegraded - вызывающая сторона логирует и
// продолжает, бронирование от CRM не зависит
func (c *Client) SyncGuestActivity(ctx context.Context, event *GuestActivityEvent) error {
	url := fmt.Sprintf("%s/internal/guests/activity", c.baseURL)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CRM unavailable, applying graceful degradation for booking_id=%d: %v", event.BookingID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, event.BookingID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusAccepted:
		c.log.Info("CRM sync ok: booking_id=%d, activity=%s", event.BookingID, event.Activity)
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("CRM returned status %d for booking_id=%d: %s", resp.StatusCode, event.BookingID, string(body))
		return fmt.Errorf("%w: unexpected status code %d", ErrServiceDegraded, resp.StatusCode)
	}
}
