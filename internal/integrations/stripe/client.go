package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client клиент Stripe Payment Intents API.
// Единственная блокирующая внешняя зависимость движка бронирований;
// все вызовы ограничены таймаутом httpClient.
type Client struct {
	baseURL        string
	secretKey      string
	maxAmountMinor int64
	httpClient     *http.Client
	log            Logger
}

// NewClient создает новый Stripe клиент.
// maxAmount - потолок суммы платежа в основной валюте (0 = дефолтный).
func NewClient(baseURL, secretKey string, maxAmount int64, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		secretKey:      secretKey,
		maxAmountMinor: maxAmount * 100,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateIntent создает платёжный интент на указанную сумму в minor units.
// idempotencyKey передаётся шлюзу, чтобы повтор запроса не создал второй интент.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency, idempotencyKey string) (*PaymentIntent, error) {
	if amountMinor <= 0 {
		return nil, ErrInvalidAmount
	}
	if c.maxAmountMinor > 0 && amountMinor > c.maxAmountMinor {
		return nil, ErrAmountTooLarge
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	endpoint := c.baseURL + "/v1/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	c.log.Info("CreateIntent: amount=%d currency=%s", amountMinor, currency)

	return c.doIntent(req)
}

// RetrieveIntent получает текущее состояние платёжного интента.
// Используется подтверждением бронирования для серверной проверки платежа -
// клиентскому "оплата прошла" движок не доверяет.
func (c *Client) RetrieveIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	if intentID == "" {
		return nil, fmt.Errorf("%w: empty intent id", ErrInternal)
	}

	endpoint := c.baseURL + "/v1/payment_intents/" + url.PathEscape(intentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.doIntent(req)
}

// doIntent выполняет запрос и парсит ответ в PaymentIntent
func (c *Client) doIntent(req *http.Request) (*PaymentIntent, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки и таймауты - повторяемый сигнал для вызывающей стороны
		c.log.Error("Stripe request failed: %s %s: %v", req.Method, req.URL.Path, err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrIntentNotFound
	case http.StatusBadRequest, http.StatusPaymentRequired:
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: status code %d", ErrInvalidResponse, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: status code %d: %s", ErrGatewayUnavailable, resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &intent, nil
}
