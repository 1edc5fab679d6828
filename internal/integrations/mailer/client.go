package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// Client клиент почтового API для уведомлений о новых заявках
// При пустой конфигурации отправка отключается: вызовы логируются и
// завершаются без ошибки, поток бронирования не блокируется
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	to         string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, apiKey, from, to string, timeout time.Duration, log Logger) *Client {
	if baseURL == "" || apiKey == "" {
		log.Warn("mailer: not configured, enquiry notifications disabled")
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		to:      to,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type sendMessageRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendEnquiryNotification отправляет письмо о новой заявке на бронирование
func (c *Client) SendEnquiryNotification(ctx context.Context, enq *domain.Enquiry) error {
	if c.baseURL == "" || c.apiKey == "" {
		c.log.Info("mailer: skipped enquiry notification for phone=%s (disabled)", enq.CustomerPhone)
		return nil
	}

	location := "not selected"
	if enq.PickupLocation != nil {
		location = *enq.PickupLocation
	}

	text := fmt.Sprintf(
		"New booking enquiry\n\nName: %s\nPhone: %s\nPickup: %s\nDrop: %s\nLocation: %s\nDuration: %d days %d hours\nTransmission: %s\n",
		enq.CustomerName,
		enq.CustomerPhone,
		enq.PickupAt.Format("2006-01-02 15:04"),
		enq.DropAt.Format("2006-01-02 15:04"),
		location,
		enq.TotalDays,
		enq.ExtraHours,
		enq.Transmission,
	)

	body, err := json.Marshal(sendMessageRequest{
		From:    c.from,
		To:      c.to,
		Subject: fmt.Sprintf("Booking enquiry from %s", enq.CustomerName),
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	c.log.Info("mailer: enquiry notification sent for phone=%s", enq.CustomerPhone)
	return nil
}
