package pixclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/payment"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/metrics"
)

const (
	ContentType       = "application/json; charset=utf-8"
	CorrelationHeader = "X-Correlation-ID"

	tracerName = "github.com/Xausdorf/qr-pay-hub/pix-gateway/pixclient"
)

// chargeRequest is the wire body the PIX service expects.
type chargeRequest struct {
	ValorTotal float64 `json:"valorTotal"`
	ChavePix   string  `json:"chavePix"`
}

type Option func(*Client)

func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// Client issues charge requests to the PIX service. It holds no per-call
// state and is safe for concurrent use; the injected http.Client owns the
// connection pool.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
	metrics    *metrics.ClientMetrics
	tracer     trace.Tracer
}

var _ payment.Client = (*Client)(nil)

func NewClient(httpClient *http.Client, endpoint string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient builds the long-lived transport shared by every call.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

// GenerateQRCode asks the PIX service for a charge of amount payable to
// payeeKey. Failures before a status is known, and 2xx replies without a body,
// match payment.ErrNoResult. Non-2xx replies return *payment.StatusError and
// undecodable 2xx bodies return *payment.DecodeError.
func (c *Client) GenerateQRCode(ctx context.Context, amount decimal.Decimal, payeeKey string) (*payment.Response, error) {
	ctx, span := c.tracer.Start(ctx, "pix.GenerateQRCode", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	resp, outcome, err := c.do(ctx, amount, payeeKey, span)
	c.metrics.RecordPIXRequest(outcome, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		c.logger.ErrorContext(ctx, "pix charge request failed",
			"outcome", outcome,
			"error", err,
		)
		return nil, err
	}

	return resp, nil
}

func (c *Client) do(
	ctx context.Context,
	amount decimal.Decimal,
	payeeKey string,
	span trace.Span,
) (*payment.Response, string, error) {
	body, err := json.Marshal(chargeRequest{
		ValorTotal: amount.InexactFloat64(),
		ChavePix:   payeeKey,
	})
	if err != nil {
		return nil, metrics.OutcomeTransport, &payment.TransportError{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, metrics.OutcomeTransport, &payment.TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set(CorrelationHeader, uuid.NewString())
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, metrics.OutcomeTransport, &payment.TransportError{Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.DebugContext(ctx, "pix response received",
		"status", resp.StatusCode,
		"content_length", resp.ContentLength,
		"correlation_id", req.Header.Get(CorrelationHeader),
	)

	raw, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, metrics.OutcomeStatus, &payment.StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	if readErr != nil {
		return nil, metrics.OutcomeTransport, &payment.TransportError{Err: fmt.Errorf("read response: %w", readErr)}
	}

	// A JSON null decodes to nothing, the same as no body at all.
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, metrics.OutcomeEmpty, payment.ErrEmptyResponse
	}

	if !json.Valid(raw) {
		return nil, metrics.OutcomeDecode, &payment.DecodeError{Err: errors.New("response body is not valid JSON")}
	}

	var out payment.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, metrics.OutcomeDecode, &payment.DecodeError{Err: err}
	}
	out.Raw = raw

	return &out, metrics.OutcomeSuccess, nil
}
