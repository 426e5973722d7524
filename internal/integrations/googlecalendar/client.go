package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент моста Google Calendar (веб-приложение Apps Script)
//
// Мост принимает POST c JSON-телом, но Content-Type выставляется как
// text/plain;charset=utf-8 - Apps Script не отвечает на CORS preflight,
// и "простой" запрос обходит его. Заголовок обязателен, иначе doPost
// получает пустое тело.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календарного моста
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateEvent создает событие в календаре и возвращает его ID
func (c *Client) CreateEvent(ctx context.Context, event EventRequest) (string, error) {
	c.log.Info("Creating calendar event: title=%q start=%s", event.Title, event.StartTime)

	resp, err := c.post(ctx, event)
	if err != nil {
		return "", err
	}

	if resp.Status != statusSuccess {
		return "", fmt.Errorf("%w: %s", ErrBridgeRejected, resp.Message)
	}
	if resp.EventID == "" {
		return "", fmt.Errorf("%w: success response without eventId", ErrInvalidResponse)
	}

	c.log.Info("Calendar event created: event_id=%s", resp.EventID)
	return resp.EventID, nil
}

// DeleteEvent удаляет событие по ID
// Мост не различает "удалено" и "не найдено", оба считаем успехом
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	c.log.Info("Deleting calendar event: event_id=%s", eventID)

	resp, err := c.post(ctx, deleteRequest{Action: actionDelete, EventID: eventID})
	if err != nil {
		return err
	}

	if resp.Status != statusSuccess {
		return fmt.Errorf("%w: %s", ErrBridgeRejected, resp.Message)
	}

	return nil
}

// ListEvents получает предстоящие события календаря
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return events, nil
}

func (c *Client) post(ctx context.Context, payload interface{}) (*bridgeResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var bridgeResp bridgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&bridgeResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &bridgeResp, nil
}
