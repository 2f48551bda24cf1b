// Package govdata calls the public congress.gov, Google Civic Information and
// FEC APIs. Every call is a single GET with the API key in the query string.
package govdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/forum-civic/forum-services/internal/govdata")

// APIError is returned when an upstream API answers with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API error (%d): %s", e.Status, e.Message)
}

// Client is the shared GET-and-decode machinery of the API clients.
type Client struct {
	BaseURL    string
	APIKey     string
	KeyParam   string
	HTTPClient *http.Client
}

func newClient(baseURL, apiKey, keyParam string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		KeyParam:   keyParam,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	ctx, span := tracer.Start(ctx, "GET "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	if params == nil {
		params = url.Values{}
	}
	params.Set(c.KeyParam, c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	span.SetAttributes(attribute.String("http.host", req.URL.Host), attribute.String("http.path", path))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// url.Error repeats the request URL, which carries the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("error calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		span.SetStatus(codes.Error, apiErr.Error())
		logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("upstream API returned an error")
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return fmt.Errorf("error decoding %s response: %w", path, err)
	}

	logger.Debug().Str("path", path).Msg("upstream API call succeeded")
	return nil
}
