package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const notifyEndpoint = "https://notify-api.line.me/api/notify"

// NotifyClient sends staff notifications through LINE Notify.
type NotifyClient struct {
	Token    string
	Endpoint string // overridable for tests; defaults to the LINE API
	HTTP     *http.Client
}

func NewNotifyClient(token string) *NotifyClient {
	return &NotifyClient{
		Token:    token,
		Endpoint: notifyEndpoint,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *NotifyClient) Send(ctx context.Context, message string) error {
	form := url.Values{"message": {message}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("notify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("notify send: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notify send: status %d", resp.StatusCode)
	}
	return nil
}
