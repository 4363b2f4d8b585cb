package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TransportError — сетевая или серверная ошибка при отправке заказа.
// Для вызвавшей стороны они одинаковы: заказ не ушёл, корзину не трогаем.
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("отправка заказа: %s", e.Message)
	case e.Status != 0:
		return fmt.Sprintf("отправка заказа: сервер вернул %d", e.Status)
	default:
		return fmt.Sprintf("отправка заказа: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client отправляет заявки на точку приёма заказов.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{url: url, client: hc}
}

// Submit отправляет заявку и возвращает номер заказа.
func (c *Client) Submit(ctx context.Context, s Submission) (string, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	var parsed Response
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{Status: resp.StatusCode, Message: parsed.Error}
	}
	if !parsed.Success {
		return "", &TransportError{Status: resp.StatusCode, Message: parsed.Error}
	}
	return parsed.OrderNumber, nil
}
