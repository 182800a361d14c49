// AngelaMos | 2026
// http_client.go

package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/cambiatus/gateway/internal/config"
	"github.com/cambiatus/gateway/internal/core"
)

// HTTPClient posts GraphQL documents to the configured endpoint.
type HTTPClient struct {
	url    string
	secret string
	client *http.Client
}

func NewHTTPClient(cfg config.GraphConfig) (*HTTPClient, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPClient{
		url:    cfg.URL,
		secret: cfg.Secret,
		client: &http.Client{Timeout: timeout},
	}, nil
}

type graphRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphResponse struct {
	Data   map[string]any `json:"data"`
	Errors []graphError   `json:"errors"`
}

type graphError struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Query(
	ctx context.Context,
	query string,
	variables map[string]any,
) (Result, error) {
	body, err := json.Marshal(graphRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("build graphql request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}
	otel.GetTextMapPropagator().Inject(
		ctx,
		propagation.HeaderCarrier(req.Header),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql request: %w: %w", core.ErrUpstream, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"graphql request: %w: unexpected status %d",
			core.ErrUpstream,
			resp.StatusCode,
		)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read graphql response: %w: %w", core.ErrUpstream, err)
	}

	var parsed graphResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf(
			"parse graphql response: %w: %w",
			core.ErrUpstream,
			err,
		)
	}

	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf(
			"graphql request: %w: %s",
			core.ErrUpstream,
			parsed.Errors[0].Message,
		)
	}

	return parsed.Data, nil
}

// Ping issues a minimal introspection query to verify the upstream is
// reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := c.Query(pingCtx, "query { __typename }", nil); err != nil {
		return fmt.Errorf("graphql ping failed: %w", err)
	}

	return nil
}

func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

var _ Client = (*HTTPClient)(nil)
