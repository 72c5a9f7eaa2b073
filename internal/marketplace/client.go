// Package marketplace реализует клиент REST-бэкенда маркетплейса лидов.
//
// Каждый ответ бэкенда завёрнут в конверт {ok, data}; единственный признак
// ошибки, который интерпретирует клиент, — ok=false. HTTP-статусы сверх
// этого не разбираются, повторов нет: неудавшаяся операция завершается
// ошибкой один раз, и решение о повторе остаётся за пользователем.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrRejected возвращается, когда бэкенд ответил конвертом с ok=false.
var ErrRejected = errors.New("backend rejected request")

var upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "admin_console_upstream_requests_total",
	Help: "Запросы к бэкенду маркетплейса по эндпоинтам и исходам.",
}, []string{"endpoint", "outcome"})

// Client — клиент бэкенда маркетплейса.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient создаёт клиент с фиксированным таймаутом запросов.
// Токен подставляется в заголовок Authorization каждого запроса.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope — единый конверт всех ответов бэкенда.
type envelope struct {
	OK   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do выполняет запрос, раскрывает конверт и декодирует поле data в out.
// При out=nil тело data отбрасывается (для операций записи).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	const op = "marketplace.do"

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(path, "transport_error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		upstreamRequests.WithLabelValues(path, "bad_envelope").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	if !env.OK {
		upstreamRequests.WithLabelValues(path, "rejected").Inc()
		return fmt.Errorf("%s: %w", op, ErrRejected)
	}
	upstreamRequests.WithLabelValues(path, "ok").Inc()

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}
