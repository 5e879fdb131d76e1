package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avc/recycle-rewards/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
)

// OrderEventClient определяет методы получения событий из системы заказов.
type OrderEventClient interface {
	GetEvents(ctx context.Context, after int64, limit int) ([]*domain.OrderEvent, error)
}

// HTTPOrderEventClient реализует OrderEventClient поверх ленты событий
// системы заказов.
type HTTPOrderEventClient struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// NewOrderEventClient создает новый OrderEventClient
func NewOrderEventClient(baseURL string) OrderEventClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil

	// 429 не повторяем внутри клиента: воркер сам выдерживает Retry-After
	client.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
			return false, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &HTTPOrderEventClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// GetEvents получает порцию событий с идентификаторами больше after
func (c *HTTPOrderEventClient) GetEvents(ctx context.Context, after int64, limit int) ([]*domain.OrderEvent, error) {
	url := fmt.Sprintf("%s/api/internal/events?after=%d&limit=%d", c.baseURL, after, limit)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("order client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var events []*domain.OrderEvent
		if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
			return nil, fmt.Errorf("order client: failed to decode response: %w", err)
		}
		return events, nil

	case http.StatusNoContent:
		// Новых событий нет
		return nil, nil

	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		seconds, _ := strconv.Atoi(retryAfter)
		return nil, NewRateLimitError(time.Duration(seconds) * time.Second)

	default:
		return nil, fmt.Errorf("order client: unexpected status code: %d", resp.StatusCode)
	}
}
