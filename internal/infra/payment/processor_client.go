// Package payment implements the client for the external card processor.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"maple/config"
	"maple/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultRequestTimeout = 15 * time.Second

// processorClient implements service.PaymentGateway against the processor's
// REST API. Requests carry the secret key as a bearer token.
type processorClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProcessorClient creates a payment gateway client from configuration.
func NewProcessorClient(cfg *config.PaymentConfig, logger *slog.Logger) service.PaymentGateway {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &processorClient{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// createIntentRequest is the JSON body for intent creation.
type createIntentRequest struct {
	AmountCents int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// processorError is the error envelope the processor returns on 4xx/5xx.
type processorError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent registers a new payment intent with the processor.
func (c *processorClient) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*service.ProcessorIntent, error) {
	body, err := json.Marshal(createIntentRequest{
		AmountCents: amountCents,
		Currency:    currency,
		Metadata:    metadata,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	intent, err := c.do(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	c.logger.Info("[Processor] Payment intent created",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount_cents", intent.AmountCents),
		slog.String("currency", intent.Currency),
	)

	return intent, nil
}

// RetrieveIntent fetches the current processor-side state of an intent.
func (c *processorClient) RetrieveIntent(ctx context.Context, intentID string) (*service.ProcessorIntent, error) {
	return c.do(ctx, http.MethodGet, c.baseURL+"/v1/payment_intents/"+intentID, nil)
}

// do sends one request to the processor and decodes the intent response.
func (c *processorClient) do(ctx context.Context, method, url string, body io.Reader) (*service.ProcessorIntent, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "processor request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read processor response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var perr processorError
		if jsonErr := json.Unmarshal(raw, &perr); jsonErr == nil && perr.Error.Message != "" {
			return nil, errors.Errorf("processor returned %d: %s (%s)", resp.StatusCode, perr.Error.Message, perr.Error.Code)
		}

		return nil, errors.Errorf("processor returned status %d", resp.StatusCode)
	}

	var intent service.ProcessorIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return nil, errors.Wrap(err, "failed to decode processor intent")
	}

	return &intent, nil
}
