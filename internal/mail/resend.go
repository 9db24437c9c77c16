package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const resendBaseURL = "https://api.resend.com"

var (
	// ErrMissingAPIKey — почтовый сервис не сконфигурирован.
	ErrMissingAPIKey = errors.New("mail: api key is not configured")
)

// Формат адреса проверяется до любого исходящего вызова.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidAddress сообщает, похожа ли строка на адрес электронной почты.
func ValidAddress(s string) bool {
	return emailRe.MatchString(s)
}

// SendError — отказ почтового провайдера. Статус 403 означает ограничение
// песочницы (письма только на адрес владельца ключа), 429 — троттлинг.
type SendError struct {
	StatusCode int
	Message    string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail: provider error (status %d): %s", e.StatusCode, e.Message)
}

// Email — одно исходящее письмо.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Client отправляет письма через Resend.
type Client struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, from string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		from:       from,
		baseURL:    resendBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Configured() bool { return c.apiKey != "" }

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send отправляет письмо и возвращает идентификатор, выданный провайдером.
func (c *Client) Send(ctx context.Context, email Email) (string, error) {
	if !c.Configured() {
		return "", ErrMissingAPIKey
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
	})
	if err != nil {
		return "", fmt.Errorf("mail: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("mail: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mail: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("mail: read response: %w", err)
	}

	var parsed sendResponse
	_ = json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", &SendError{StatusCode: resp.StatusCode, Message: msg}
	}
	return parsed.ID, nil
}
