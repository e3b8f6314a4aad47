// Package remote клиент удалённого API данных: услуги, заказы и отзывы.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/models"
	"go.uber.org/zap"
)

// APIKeyHeader заголовок с ключом доступа к закрытым методам API.
const APIKeyHeader = "X-Api-Key"

var ErrUnexpectedStatus = errors.New("unexpected response status")

type Client struct {
	servicesURL string
	ordersURL   string
	reviewsURL  string
	apiKey      string
	client      *http.Client
}

// New создает клиент для API по адресу baseURL. Пустой apiKey не отправляется.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	base := strings.TrimRight(baseURL, "/")

	return &Client{
		servicesURL: base + "/api/services",
		ordersURL:   base + "/api/orders",
		reviewsURL:  base + "/api/reviews",
		apiKey:      apiKey,
		client:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	return list[models.Service](ctx, c, c.servicesURL, "services")
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	return list[models.Order](ctx, c, c.ordersURL, "orders")
}

func (c *Client) ListReviews(ctx context.Context) ([]models.Review, error) {
	return list[models.Review](ctx, c, c.reviewsURL, "reviews")
}

func (c *Client) CreateService(ctx context.Context, service models.Service) (int64, error) {
	var created struct {
		ServiceID int64 `json:"service_id"`
	}

	if err := c.do(ctx, http.MethodPost, c.servicesURL, service, &created); err != nil {
		return 0, err
	}
	return created.ServiceID, nil
}

func (c *Client) UpdateService(ctx context.Context, service models.Service) error {
	return c.do(ctx, http.MethodPut, c.servicesURL, service, nil)
}

func (c *Client) DeleteService(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, withID(c.servicesURL, id), nil, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, withID(c.ordersURL, id), nil, nil)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	return c.do(ctx, http.MethodPut, c.ordersURL, models.OrderStatusUpdate{ID: &id, Status: status}, nil)
}

func (c *Client) SetReviewPublished(ctx context.Context, id int64, published bool) error {
	return c.do(ctx, http.MethodPut, c.reviewsURL, models.ReviewModeration{ID: &id, IsPublished: &published}, nil)
}

func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, withID(c.reviewsURL, id), nil, nil)
}

func withID(endpoint string, id int64) string {
	return endpoint + "?" + url.Values{"id": {strconv.FormatInt(id, 10)}}.Encode()
}

// list читает коллекцию под ключом key. Если ключа нет в ответе, коллекция считается пустой.
func list[T any](ctx context.Context, c *Client, endpoint, key string) ([]T, error) {
	var envelope map[string]json.RawMessage

	if err := c.do(ctx, http.MethodGet, endpoint+"?all=true", nil, &envelope); err != nil {
		return nil, err
	}

	raw, ok := envelope[key]
	if !ok || string(raw) == "null" {
		logger.Log.Warn("response has no collection", zap.String("url", endpoint), zap.String("key", key))
		return []T{}, nil
	}

	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return items, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s request: %w", method, err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusConflict:
		return models.ErrInvalidStatusTransition
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		logger.Log.Warn("data api responded with error",
			zap.String("method", method),
			zap.String("url", endpoint),
			zap.Int("status", res.StatusCode),
		)
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
